// Package emit renders assembled flag sets into the surfaces third-party
// build systems consume: generated makefile fragments and configure-style
// argument vectors.
package emit

import (
	"strings"
)

// Fragment builds a plain-text build-configuration fragment of KEY = value
// lines, the format consumed by make-based build systems. Lines appear in
// the order they were added; the format itself is fixed by the external
// build tool.
type Fragment struct {
	b strings.Builder
}

// Include appends an include directive followed by a blank line.
func (f *Fragment) Include(path string) {
	f.b.WriteString("include " + path + "\n\n")
}

// Set appends a single KEY = value line.
func (f *Fragment) Set(key, value string) {
	f.b.WriteString(key + " = " + value + "\n")
}

// SetList appends a KEY = v1 v2 ... line followed by a blank line.
func (f *Fragment) SetList(key string, values []string) {
	f.b.WriteString(key + " = " + strings.Join(values, " ") + "\n\n")
}

// Blank appends an empty line.
func (f *Fragment) Blank() {
	f.b.WriteString("\n")
}

// Bytes returns the rendered fragment.
func (f *Fragment) Bytes() []byte {
	return []byte(f.b.String())
}

// String returns the rendered fragment as a string.
func (f *Fragment) String() string {
	return f.b.String()
}
