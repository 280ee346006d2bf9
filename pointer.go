package jsonschema

import (
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// Token is one segment of a Pointer: either an object key or a
// non-negative array index, per §3: "An ordered sequence of tokens, each
// either a string (object key) or a non-negative integer (array index)."
type Token struct {
	Key     string
	Index   int
	IsIndex bool
}

// Pointer locates a node within a schema or an instance; the same type
// serves both evaluate_path/schema-location and instance_location per §3.
type Pointer []Token

// EmptyPointer denotes the root.
var EmptyPointer = Pointer(nil)

// NewPointer builds a Pointer from string keys; use for schema-side paths.
func NewPointer(keys ...string) Pointer {
	p := make(Pointer, 0, len(keys))
	for _, k := range keys {
		p = append(p, Token{Key: k})
	}
	return p
}

// AppendKey returns a new Pointer with a string token appended.
func (p Pointer) AppendKey(key string) Pointer {
	out := make(Pointer, len(p), len(p)+1)
	copy(out, p)
	return append(out, Token{Key: key})
}

// AppendIndex returns a new Pointer with an array-index token appended.
func (p Pointer) AppendIndex(i int) Pointer {
	out := make(Pointer, len(p), len(p)+1)
	copy(out, p)
	return append(out, Token{Index: i, IsIndex: true})
}

// Parent returns the pointer with its last token removed; empty if already empty.
func (p Pointer) Parent() Pointer {
	if len(p) == 0 {
		return p
	}
	return p[:len(p)-1]
}

// Last returns the final token and true, or the zero Token and false if empty.
func (p Pointer) Last() (Token, bool) {
	if len(p) == 0 {
		return Token{}, false
	}
	return p[len(p)-1], true
}

// Empty reports whether the pointer denotes the root.
func (p Pointer) Empty() bool { return len(p) == 0 }

// String formats the pointer per RFC 6901, delegating escaping of `~`/`/`
// to kaptinlin/jsonpointer the same way the teacher's ref.go formats
// JSON-Pointer-derived locations for error messages.
func (p Pointer) String() string {
	if len(p) == 0 {
		return ""
	}
	raw := make([]string, len(p))
	for i, tok := range p {
		if tok.IsIndex {
			raw[i] = strconv.Itoa(tok.Index)
		} else {
			raw[i] = tok.Key
		}
	}
	return "/" + jsonpointer.Format(raw...)
}

// ParsePointer parses an RFC 6901 JSON Pointer string (without a leading
// "#") into a Pointer, reusing the teacher's dependency for `~0`/`~1`
// unescaping (ref.go: resolveJSONPointer).
func ParsePointer(s string) Pointer {
	s = strings.TrimPrefix(s, "#")
	if s == "" || s == "/" {
		return EmptyPointer
	}
	segments := jsonpointer.Parse(s)
	p := make(Pointer, 0, len(segments))
	for _, seg := range segments {
		if idx, err := strconv.Atoi(seg); err == nil && idx >= 0 && strconv.Itoa(idx) == seg {
			p = append(p, Token{Index: idx, IsIndex: true})
		} else {
			p = append(p, Token{Key: seg})
		}
	}
	return p
}

// Get navigates a Value by the pointer, used both to locate subschemas
// within a schema document and values within an instance.
func (p Pointer) Get(root Value) (Value, bool) {
	cur := root
	for _, tok := range p {
		if tok.IsIndex {
			next, ok := cur.Index(tok.Index)
			if !ok {
				return Value{}, false
			}
			cur = next
		} else {
			next, ok := cur.At(tok.Key)
			if !ok {
				return Value{}, false
			}
			cur = next
		}
	}
	return cur, true
}

// Equal reports structural equality of two pointers.
func (p Pointer) Equal(other Pointer) bool {
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
