package caller

import (
	"path/filepath"
	"strings"
)

// Context is an explicit description of where a piece of work happens.  Code that knows its own
// identity can carry a Context instead of inspecting the stack.
type Context struct {
	// Component is the enclosing unit, typically a type or package name.
	Component string

	// Operation is the action being performed, typically a method name.
	Operation string

	// File is the base name of the source file the Context was created in.  It may be empty.
	File string
}

// NewContext creates a Context for the given component and operation, recording the base name of
// the caller's source file.
func NewContext(component, operation string) Context {
	c := Context{
		Component: component,
		Operation: operation,
	}

	if _, file, ok := frame(1); ok {
		c.File = filepath.Base(file)
	}

	return c
}

// String renders the context as "Component.Operation", omitting whichever part is empty.
func (c Context) String() string {
	var parts []string
	if len(c.Component) > 0 {
		parts = append(parts, c.Component)
	}

	if len(c.Operation) > 0 {
		parts = append(parts, c.Operation)
	}

	return strings.Join(parts, ".")
}

// Metadata allows a Context to enrich a go-kit logger
func (c Context) Metadata() map[string]interface{} {
	m := map[string]interface{}{
		"component": c.Component,
		"operation": c.Operation,
	}

	if len(c.File) > 0 {
		m["file"] = c.File
	}

	return m
}
