// Package pipeline provides the validation pipeline infrastructure.
package pipeline

import (
	"sync"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/document"
)

// Context holds all state needed during validation of a single document.
// It is passed through all validation phases and provides shared access
// to the parsed tree, options, and accumulated results.
//
// Context instances are pooled for efficiency. Use AcquireContext() and
// Release() to manage them properly.
type Context struct {
	// Source is the raw XML document being validated.
	Source []byte

	// Root is the parsed document tree. Nil when parsing failed.
	Root *document.Node

	// SchemaVersion is the schema version being validated against.
	SchemaVersion mv.SchemaVersion

	// Result accumulates validation messages.
	Result *mv.Result

	// Options holds validation options.
	Options *mv.Options

	// items is the lazily built item index shared by the late phases.
	items *ItemIndex

	// mu protects metadata access.
	mu sync.RWMutex

	// metadata carries ad hoc values between phases.
	metadata map[string]any
}

// contextPool holds reusable Context instances.
var contextPool = sync.Pool{
	New: func() any {
		return &Context{
			metadata: make(map[string]any, 4),
		}
	},
}

// AcquireContext gets a Context from the pool.
// Call Release() when done to return it to the pool.
func AcquireContext() *Context {
	ctx := contextPool.Get().(*Context)
	ctx.Reset()
	return ctx
}

// Release returns the Context to the pool.
// After calling Release, the Context should not be used.
func (c *Context) Release() {
	if c == nil {
		return
	}
	contextPool.Put(c)
}

// Reset clears the context for reuse.
func (c *Context) Reset() {
	c.Source = nil
	c.Root = nil
	c.SchemaVersion = ""
	c.Result = nil
	c.Options = nil
	c.items = nil

	for k := range c.metadata {
		delete(c.metadata, k)
	}
}

// NewContext creates a new Context (non-pooled).
// Prefer AcquireContext() for better performance.
func NewContext() *Context {
	return &Context{
		metadata: make(map[string]any, 4),
	}
}

// SetMetadata stores a value in the context metadata.
func (c *Context) SetMetadata(key string, value any) {
	c.mu.Lock()
	c.metadata[key] = value
	c.mu.Unlock()
}

// GetMetadata retrieves a value from the context metadata.
func (c *Context) GetMetadata(key string) (any, bool) {
	c.mu.RLock()
	v, ok := c.metadata[key]
	c.mu.RUnlock()
	return v, ok
}

// Items returns the item index for the document, building it on first use.
// Phases run sequentially, so lazy construction needs no locking.
func (c *Context) Items() *ItemIndex {
	if c.items == nil {
		c.items = BuildItemIndex(c.Root)
	}
	return c.items
}

// ShouldStop returns true if validation should stop (max errors reached).
func (c *Context) ShouldStop() bool {
	if c.Options == nil || c.Options.MaxErrors <= 0 {
		return false
	}
	if c.Result == nil {
		return false
	}
	return c.Result.ErrorCount() >= c.Options.MaxErrors
}

// AddMessage adds a validation message to the result.
func (c *Context) AddMessage(m mv.Message) {
	if c.Result != nil {
		c.Result.Add(m)
	}
}
