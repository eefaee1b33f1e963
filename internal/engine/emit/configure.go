package emit

import "slices"

// ConfigureArgs assembles the argument vector for an autotools configure
// invocation. Order is preserved as added; Prepend exists for the rare
// tool-specific workaround that must come first on the command line.
type ConfigureArgs struct {
	args []string
}

// NewConfigureArgs starts an argument vector with a --prefix option.
func NewConfigureArgs(prefix string) *ConfigureArgs {
	return &ConfigureArgs{args: []string{"--prefix=" + prefix}}
}

// Add appends literal arguments.
func (c *ConfigureArgs) Add(args ...string) {
	c.args = append(c.args, args...)
}

// Enable appends an --enable-<feature> option.
func (c *ConfigureArgs) Enable(feature string) {
	c.args = append(c.args, "--enable-"+feature)
}

// Disable appends a --disable-<feature> option.
func (c *ConfigureArgs) Disable(feature string) {
	c.args = append(c.args, "--disable-"+feature)
}

// Prepend inserts an argument at the front of the vector.
func (c *ConfigureArgs) Prepend(arg string) {
	c.args = slices.Insert(c.args, 0, arg)
}

// Clone returns an independent copy of the current vector.
func (c *ConfigureArgs) Clone() *ConfigureArgs {
	return &ConfigureArgs{args: slices.Clone(c.args)}
}

// List returns the assembled argument vector.
func (c *ConfigureArgs) List() []string {
	return slices.Clone(c.args)
}
