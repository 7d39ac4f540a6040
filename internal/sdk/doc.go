// Package sdk detects the installed .NET SDK version and knows which SDK
// release first shipped each query mode, so doctor can warn before the
// external command rejects an option.
package sdk
