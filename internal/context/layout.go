package context

import "github.com/parkertenbroeck/bc/internal/diag"

// ComputeLayouts is post-ingestion pass (ii): force every user type's
// layout to materialize, surfacing any recursive-type cycle as a
// diagnostic instead of letting the first caller that happens to need
// the layout discover it later.
func (c *Context) ComputeLayouts() {
	for path := range c.structs {
		c.layoutOf(path)
	}
	for path := range c.unions {
		c.layoutOf(path)
	}
	for path := range c.enums {
		c.layoutOf(path)
	}
}

func (c *Context) layoutOf(path string) {
	if _, err := c.Types.Layout(path); err != nil {
		c.report(diag.New(diag.KindRecursiveType, zeroSpan(), "%s", err))
	}
}
