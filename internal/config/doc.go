// Package config manages user-level settings stored at ~/.pkglist/config.yaml.
// It loads, reads and writes keys such as the external listing command, the
// log level and the location of the flag profiles file. Every key can also be
// supplied through a PKGLIST_-prefixed environment variable.
package config
