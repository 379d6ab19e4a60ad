package pathutil

import (
	"strconv"
	"strings"
)

// PathBuilder provides efficient incremental coding path construction.
// Uses push/pop semantics to avoid allocations during traversal.
// The full string is only materialized when String() is called.
//
// Segments are stored pre-rendered: fields as ".name", keys as "['key']",
// and indices as "[n]", so String() is a plain concatenation.
type PathBuilder struct {
	segments []string
	length   int // Pre-calculated length for String() allocation
}

// PushField adds a record field segment: ".name".
func (p *PathBuilder) PushField(name string) {
	p.push("." + name)
}

// PushKey adds a map key segment: "['key']".
func (p *PathBuilder) PushKey(key string) {
	p.push(KeySegment(key))
}

var keyEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// KeySegment renders key as "['key']", escaping backslashes and single
// quotes with a backslash.
func KeySegment(key string) string {
	return "['" + keyEscaper.Replace(key) + "']"
}

// PushIndex adds an array index segment: "[0]", "[1]", etc.
func (p *PathBuilder) PushIndex(i int) {
	p.push("[" + strconv.Itoa(i) + "]")
}

func (p *PathBuilder) push(seg string) {
	p.segments = append(p.segments, seg)
	p.length += len(seg)
}

// Pop removes the last segment.
func (p *PathBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	p.length -= len(last)
}

// Len returns the number of segments.
func (p *PathBuilder) Len() int {
	return len(p.segments)
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// String materializes the full path. The root path is the empty string.
func (p *PathBuilder) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(p.length)
	for _, seg := range p.segments {
		b.WriteString(seg)
	}
	return b.String()
}
