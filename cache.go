package texpatch

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Result is a compiled source together with its position map.
type Result struct {
	Text string
	Map  *SourceMap
}

// Compiler compiles sources with a fixed Config and keeps the most recent
// results, so that repeated position lookups on an unchanged buffer do not
// recompile it. It is safe for concurrent use.
type Compiler struct {
	config Config
	cache  *lru.Cache[string, Result]
}

// NewCompiler creates a Compiler remembering up to size results.
func NewCompiler(cfg Config, size int) (*Compiler, error) {
	cache, err := lru.New[string, Result](size)
	if err != nil {
		return nil, fmt.Errorf("create compile cache: %w", err)
	}

	return &Compiler{config: cfg, cache: cache}, nil
}

// Config returns the rules the compiler applies.
func (c *Compiler) Config() Config {
	return c.config
}

// Compile returns the compiled source, reusing a cached result when available.
func (c *Compiler) Compile(source string) Result {
	if res, ok := c.cache.Get(source); ok {
		return res
	}

	text, m := CompileWithMap(c.config, source)
	res := Result{Text: text, Map: m}
	c.cache.Add(source, res)

	return res
}

// SourceOffset maps an offset in the compiled source back to the source.
func (c *Compiler) SourceOffset(source string, outputOffset int) int {
	return c.Compile(source).Map.SourceOffset(outputOffset)
}

// Len returns the number of cached results.
func (c *Compiler) Len() int {
	return c.cache.Len()
}
