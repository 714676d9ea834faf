package treepatch

import (
	"github.com/treepatch/go-treepatch/exclude"
	"github.com/treepatch/go-treepatch/ir"
)

type Config struct {
	engine    *exclude.Engine
	preserved []string
	fallback  *ir.Node
}

type Option func(*Config)

// WithPolicy compiles and installs an exclusion policy. A policy
// carrying preserved_fields also installs that preservation list.
func WithPolicy(p *exclude.Policy) Option {
	return func(c *Config) {
		c.engine = exclude.New(p)
		if len(p.PreservedFields) > 0 {
			c.preserved = p.PreservedFields
		}
	}
}

// WithEngine installs an already-compiled exclusion engine.
func WithEngine(e *exclude.Engine) Option {
	return func(c *Config) { c.engine = e }
}

// WithPreservedFields sets the always-preserved field names restored
// from the base tree by the preservation pass.
func WithPreservedFields(fields ...string) Option {
	return func(c *Config) { c.preserved = fields }
}

// WithFallback supplies a full target tree used to resolve addition
// records whose value was not captured.
func WithFallback(target *ir.Node) Option {
	return func(c *Config) { c.fallback = target }
}

func newConfig(opts []Option) *Config {
	c := &Config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.engine == nil {
		c.engine = exclude.New(&exclude.Policy{})
	}
	return c
}
