package profile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const schemaURL = "profile.schema.json"

//go:embed schema/profile.schema.json
var schemaJSON []byte

var printer = message.NewPrinter(language.English)

// Issue is one schema violation in a profiles file.
type Issue struct {
	Path    string // JSON pointer into the file, e.g. "/profiles/0/name"
	Keyword string
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

var profileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("registering schema: %w", err)
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return s, nil
})

// Validate checks raw profiles YAML against the embedded schema and returns
// the violations found; none means the document is valid. The error is only
// for unreadable YAML or a broken schema.
func Validate(data []byte) ([]Issue, error) {
	schema, err := profileSchema()
	if err != nil {
		return nil, err
	}

	inst, err := toInstance(data)
	if err != nil {
		return nil, err
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("validating profiles: %w", err)
	}
	return leafIssues(ve), nil
}

// toInstance decodes YAML into the value shape jsonschema expects, with
// numbers as json.Number.
func toInstance(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	buf, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting YAML to JSON: %w", err)
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(buf))
}

// leafIssues flattens the error tree into its leaves, skipping wrapper
// keywords and repeats.
func leafIssues(root *jsonschema.ValidationError) []Issue {
	var issues []Issue
	seen := make(map[Issue]bool)

	stack := []*jsonschema.ValidationError{root}
	for len(stack) > 0 {
		ve := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(ve.Causes) > 0 {
			// Push in reverse so causes come out in document order.
			for i := len(ve.Causes) - 1; i >= 0; i-- {
				stack = append(stack, ve.Causes[i])
			}
			continue
		}
		if ve.ErrorKind == nil {
			continue
		}

		kw := ve.ErrorKind.KeywordPath()
		if len(kw) == 0 {
			continue
		}
		issue := Issue{Keyword: kw[len(kw)-1], Message: ve.ErrorKind.LocalizedString(printer)}
		switch issue.Keyword {
		case "$ref", "allOf":
			continue
		}
		if len(ve.InstanceLocation) > 0 {
			issue.Path = "/" + strings.Join(ve.InstanceLocation, "/")
		}

		if !seen[issue] {
			seen[issue] = true
			issues = append(issues, issue)
		}
	}

	if len(issues) == 0 {
		return []Issue{{Message: root.Error()}}
	}
	return issues
}
