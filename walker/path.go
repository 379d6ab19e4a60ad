package walker

import (
	"strconv"

	"github.com/erraggy/oaskit/internal/pathutil"
)

// SegmentKind distinguishes the three ways a walk can step into a child.
type SegmentKind uint8

const (
	// FieldSegment is a record field, named by its wire name.
	FieldSegment SegmentKind = iota
	// KeySegment is a map entry, named by its literal key.
	KeySegment
	// IndexSegment is a sequence element.
	IndexSegment
)

// Segment is one step of a coding path.
type Segment struct {
	Kind  SegmentKind
	Name  string // field name or map key
	Index int    // sequence index when Kind is IndexSegment
}

// Field returns a record field segment.
func Field(name string) Segment { return Segment{Kind: FieldSegment, Name: name} }

// Key returns a map key segment.
func Key(key string) Segment { return Segment{Kind: KeySegment, Name: key} }

// Index returns a sequence index segment.
func Index(i int) Segment { return Segment{Kind: IndexSegment, Index: i} }

// Value returns the raw step value: the field name, the map key, or the
// stringified index.
func (s Segment) Value() string {
	if s.Kind == IndexSegment {
		return strconv.Itoa(s.Index)
	}
	return s.Name
}

// String renders the segment as ".name", "['key']" or "[n]". Quotes and
// backslashes inside a key are escaped with a backslash.
func (s Segment) String() string {
	switch s.Kind {
	case KeySegment:
		return pathutil.KeySegment(s.Name)
	case IndexSegment:
		return "[" + strconv.Itoa(s.Index) + "]"
	default:
		return "." + s.Name
	}
}

// Path is a coding path from the walk root to a node.
type Path []Segment

// String renders the path by concatenating its segments.
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	b := pathutil.Get()
	defer pathutil.Put(b)
	for _, seg := range p {
		switch seg.Kind {
		case KeySegment:
			b.PushKey(seg.Name)
		case IndexSegment:
			b.PushIndex(seg.Index)
		default:
			b.PushField(seg.Name)
		}
	}
	return b.String()
}

// Strings returns the raw value of each segment.
func (p Path) Strings() []string {
	out := make([]string, len(p))
	for i, seg := range p {
		out[i] = seg.Value()
	}
	return out
}

// Clone returns a copy of p that does not share backing storage.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Append returns a new path with segs appended. p is never modified.
func (p Path) Append(segs ...Segment) Path {
	out := make(Path, len(p), len(p)+len(segs))
	copy(out, p)
	return append(out, segs...)
}

// Equal reports whether two paths have the same segments.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}
