package texpatch

import "sort"

// SourceMap records how many output characters each source character expanded
// into. Offsets are counted in characters (runes), not bytes.
type SourceMap struct {
	header int
	growth []int
	// starts[i] is the output offset where the expansion of source character i
	// begins; starts[len(growth)] is where the footer begins.
	starts []int
	output int
}

func newSourceMap(units []unit, n int) *SourceMap {
	m := &SourceMap{growth: make([]int, n), starts: make([]int, n+1), output: len(units)}

	for _, u := range units {
		switch {
		case u.src < 0:
			m.header++
		case u.src < n:
			m.growth[u.src]++
		}
	}

	m.starts[0] = m.header
	for i, g := range m.growth {
		m.starts[i+1] = m.starts[i] + g
	}

	return m
}

// MapOutputOffsetToSourceOffset returns the source offset that corresponds to
// outputOffset in Compile(cfg, source). Offsets out of range are clamped.
func MapOutputOffsetToSourceOffset(cfg Config, source string, outputOffset int) int {
	_, m := CompileWithMap(cfg, source)
	return m.SourceOffset(outputOffset)
}

// SourceOffset walks the source until the output produced so far reaches
// outputOffset and returns the number of source characters consumed. An offset
// inside the header maps to 0, an offset inside the footer or past the end maps
// to the source length.
func (m *SourceMap) SourceOffset(outputOffset int) int {
	n := len(m.growth)

	// first i with starts[i] >= outputOffset; n when the source runs out first
	return sort.Search(n, func(i int) bool {
		return m.starts[i] >= outputOffset
	})
}

// OutputOffset returns the output offset at which the expansion of source
// character src begins. src is clamped to [0, SourceLen()].
func (m *SourceMap) OutputOffset(src int) int {
	src = max(0, min(src, len(m.growth)))
	return m.starts[src]
}

// Growth returns how many output characters source character src expanded
// into. Characters of a multi-character comment marker report 0 except the
// last one.
func (m *SourceMap) Growth(src int) int {
	if src < 0 || src >= len(m.growth) {
		return 0
	}

	return m.growth[src]
}

// HeaderLen is the length of the \begin{...} line, 0 without a base environment.
func (m *SourceMap) HeaderLen() int {
	return m.header
}

// SourceLen is the number of characters in the source.
func (m *SourceMap) SourceLen() int {
	return len(m.growth)
}

// OutputLen is the number of characters in the compiled output.
func (m *SourceMap) OutputLen() int {
	return m.output
}
