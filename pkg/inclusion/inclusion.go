// Package inclusion tracks nested conditional scopes as a stack of booleans.
//
// The stack starts with a single true root. Each pushed level stores its own
// result ANDed with the enclosing level, so the top always answers whether the
// current line is included. The package knows nothing about directive syntax.
package inclusion

// Context is a mutable inclusion stack. The zero value is not usable, use New.
type Context struct {
	levels []bool
	lines  []int
}

// New returns a context holding only the root level
func New() *Context {
	return &Context{levels: []bool{true}, lines: []int{0}}
}

// Push opens a level whose own condition evaluated to selfTrue
func (c *Context) Push(selfTrue bool) {
	c.PushAt(selfTrue, 0)
}

// PushAt is Push with the source line that opened the level, used for
// reporting unclosed levels
func (c *Context) PushAt(selfTrue bool, line int) {
	c.levels = append(c.levels, selfTrue && c.Included())
	c.lines = append(c.lines, line)
}

// Pop closes the innermost level. It returns false, leaving the context
// unchanged, when only the root remains.
func (c *Context) Pop() bool {
	if len(c.levels) <= 1 {
		return false
	}
	c.levels = c.levels[:len(c.levels)-1]
	c.lines = c.lines[:len(c.lines)-1]
	return true
}

// Included reports whether content at the current level is emitted
func (c *Context) Included() bool {
	return c.levels[len(c.levels)-1]
}

// Depth returns the number of open levels above the root
func (c *Context) Depth() int {
	return len(c.levels) - 1
}

// Balanced reports whether every pushed level has been popped
func (c *Context) Balanced() bool {
	return c.Depth() == 0
}

// InnermostLine returns the line recorded for the innermost open level,
// or 0 at the root
func (c *Context) InnermostLine() int {
	return c.lines[len(c.lines)-1]
}
