package jsonschema

import (
	"bytes"
	"fmt"
	"math/big"
	"sort"

	"github.com/goccy/go-json"
)

// Kind identifies the tag of a JSON value, per §3 of the spec's data model:
// a sum type {Null, Bool, Integer, Real, String, Array, Object} with a
// strict distinction between Integer and Real except where a schema
// explicitly treats them uniformly (type: number).
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindReal
	KindString
	KindArray
	KindObject
)

// String returns the JSON Schema type name for the kind ("integer" and
// "real" both map to distinct schema type names; "real" is schema type
// "number" and so is "integer" when matched against type:number).
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindReal:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// object is an insertion-ordered string-keyed map, matching the spec's
// "Object iteration order is insertion order" invariant.
type object struct {
	keys []string
	vals map[string]Value
}

func newObject() *object {
	return &object{vals: make(map[string]Value)}
}

func (o *object) set(key string, v Value) {
	if _, exists := o.vals[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

func (o *object) get(key string) (Value, bool) {
	v, ok := o.vals[key]
	return v, ok
}

func (o *object) has(key string) bool {
	_, ok := o.vals[key]
	return ok
}

func (o *object) len() int {
	return len(o.keys)
}

// Keys returns the object's keys in insertion order.
func (o *object) Keys() []string {
	return o.keys
}

// Value is the engine's realization of the spec's JSON value sum type.
// Zero value is Null. Decode and the New* constructors build complete
// Values, and only Set (used to populate a NewObject) modifies one
// afterwards; Templates and Frames hold Values by copy.
type Value struct {
	kind Kind
	b    bool
	i    *big.Int
	r    float64
	s    string
	arr  []Value
	obj  *object
}

// NewNull returns the JSON null value.
func NewNull() Value { return Value{kind: KindNull} }

// NewBool wraps a Go bool.
func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

// NewInteger wraps an arbitrary-precision integer.
func NewInteger(i *big.Int) Value { return Value{kind: KindInteger, i: i} }

// NewIntegerInt64 wraps an int64 as an Integer value.
func NewIntegerInt64(i int64) Value { return Value{kind: KindInteger, i: big.NewInt(i)} }

// NewReal wraps a float64 as a Real value.
func NewReal(f float64) Value { return Value{kind: KindReal, r: f} }

// NewString wraps a Go string.
func NewString(s string) Value { return Value{kind: KindString, s: s} }

// NewArray wraps a slice of Values.
func NewArray(items ...Value) Value { return Value{kind: KindArray, arr: items} }

// NewObject starts an empty Object value; use Set to populate it.
func NewObject() Value { return Value{kind: KindObject, obj: newObject()} }

// Kind reports the value's tag.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsInteger() bool { return v.kind == KindInteger }
func (v Value) IsReal() bool   { return v.kind == KindReal }
func (v Value) IsNumber() bool { return v.kind == KindInteger || v.kind == KindReal }
func (v Value) IsString() bool { return v.kind == KindString }
func (v Value) IsArray() bool  { return v.kind == KindArray }
func (v Value) IsObject() bool { return v.kind == KindObject }

// Bool returns the underlying bool; only meaningful when Kind() == KindBool.
func (v Value) Bool() bool { return v.b }

// String returns the underlying string; only meaningful when Kind() == KindString.
func (v Value) String() string { return v.s }

// Array returns the underlying element slice; only meaningful when Kind() == KindArray.
func (v Value) Array() []Value { return v.arr }

// Float64 returns the value as a float64, valid for both Integer and Real kinds.
func (v Value) Float64() float64 {
	switch v.kind {
	case KindInteger:
		f, _ := new(big.Float).SetInt(v.i).Float64()
		return f
	case KindReal:
		return v.r
	default:
		return 0
	}
}

// Rat returns the value as an exact big.Rat, used by numeric assertions
// (maximum/minimum/multipleOf) that must not lose precision to float64.
func (v Value) Rat() *big.Rat {
	switch v.kind {
	case KindInteger:
		return new(big.Rat).SetInt(v.i)
	case KindReal:
		// Parsing the shortest decimal form of the float64 makes a literal
		// such as 0.1 exactly 1/10 rather than its binary approximation.
		r, ok := new(big.Rat).SetString(fmt.Sprint(v.r))
		if !ok {
			r = new(big.Rat).SetFloat64(v.r)
		}
		return r
	default:
		return new(big.Rat)
	}
}

// Int returns the underlying big.Int; only meaningful when Kind() == KindInteger.
func (v Value) Int() *big.Int { return v.i }

// Len returns the size of an Array, Object, or String (codepoint count for
// strings, per the spec's "codepoint_length(s)" property).
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.len()
	case KindString:
		return len([]rune(v.s))
	default:
		return 0
	}
}

// Defines reports whether an Object value has the given key.
func (v Value) Defines(key string) bool {
	if v.kind != KindObject {
		return false
	}
	return v.obj.has(key)
}

// At returns the value at an Object key.
func (v Value) At(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	return v.obj.get(key)
}

// Index returns the value at an Array index.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}
	return v.arr[i], true
}

// Keys returns an Object's keys in insertion order; empty for non-objects.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	return v.obj.Keys()
}

// Set inserts or overwrites a key on an Object value, appending the key to
// the insertion order only the first time it's seen.
func (v Value) Set(key string, val Value) {
	if v.kind != KindObject {
		return
	}
	v.obj.set(key, val)
}

// Equal implements structural equality. It does not keep the Integer/Real
// distinction: an Integer and a Real are equal when they denote the same
// number, compared by exact rational value. Decode already classifies
// every integral number as Integer, so this case only arises for values
// built with NewReal.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		// Numeric kinds compare by exact rational value; any other kind
		// mismatch is unequal.
		if a.IsNumber() && b.IsNumber() {
			return a.Rat().Cmp(b.Rat()) == 0
		}
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindInteger:
		return a.i.Cmp(b.i) == 0
	case KindReal:
		return a.r == b.r
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.obj.len() != b.obj.len() {
			return false
		}
		for _, k := range a.obj.Keys() {
			av, _ := a.obj.get(k)
			bv, ok := b.obj.get(k)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Hash returns a stable string encoding suitable for set membership
// (EqualsAny, Unique) that respects the same equality rules as Equal.
func Hash(v Value) string {
	switch v.kind {
	case KindNull:
		return "n"
	case KindBool:
		if v.b {
			return "b:1"
		}
		return "b:0"
	case KindInteger, KindReal:
		r := v.Rat()
		return "#:" + r.RatString()
	case KindString:
		return "s:" + v.s
	case KindArray:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for _, item := range v.arr {
			buf.WriteString(Hash(item))
			buf.WriteByte(',')
		}
		buf.WriteByte(']')
		return buf.String()
	case KindObject:
		keys := append([]string(nil), v.obj.Keys()...)
		sort.Strings(keys)
		var buf bytes.Buffer
		buf.WriteByte('{')
		for _, k := range keys {
			val, _ := v.obj.get(k)
			buf.WriteString(k)
			buf.WriteByte(':')
			buf.WriteString(Hash(val))
			buf.WriteByte(',')
		}
		buf.WriteByte('}')
		return buf.String()
	default:
		return ""
	}
}

// Decode parses JSON bytes into a Value, preserving object key order and
// the Integer/Real distinction via json.Number, the same way the teacher's
// getDataType (utils.go) classifies json.Number as integer vs number.
func Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrValueDecode, err)
	}
	return decodeOrdered(data, raw)
}

// decodeOrdered re-walks the raw data with a token stream to recover object
// key insertion order, which decoding into `any` alone discards.
func decodeOrdered(data []byte, _ any) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrValueDecode, err)
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(t), nil
	case json.Number:
		return numberToValue(t), nil
	case string:
		return NewString(t), nil
	case json.Delim:
		switch t {
		case '[':
			var items []Value
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Value{}, err
			}
			return Value{kind: KindArray, arr: items}, nil
		case '{':
			obj := newObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, _ := keyTok.(string)
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				obj.set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Value{}, err
			}
			return Value{kind: KindObject, obj: obj}, nil
		}
	}
	return Value{}, fmt.Errorf("%w: unexpected token %v", ErrValueDecode, tok)
}

// numberToValue classifies a json.Number as Integer or Real, mirroring the
// teacher's getDataType: a number with no fractional part is an integer.
func numberToValue(n json.Number) Value {
	if i, ok := new(big.Int).SetString(string(n), 10); ok {
		return NewInteger(i)
	}
	bf, ok := new(big.Float).SetString(string(n))
	if ok {
		if i, acc := bf.Int(nil); acc == big.Exact {
			return NewInteger(i)
		}
	}
	f, _ := n.Float64()
	return NewReal(f)
}

// FromAny converts a generic Go value (as produced by encoding/json without
// UseNumber, or built by hand) into a Value. Used by tests and by callers
// constructing instances programmatically.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(x), nil
	case string:
		return NewString(x), nil
	case json.Number:
		return numberToValue(x), nil
	case float64:
		if float64(int64(x)) == x {
			return NewIntegerInt64(int64(x)), nil
		}
		return NewReal(x), nil
	case int:
		return NewIntegerInt64(int64(x)), nil
	case int64:
		return NewIntegerInt64(x), nil
	case []any:
		items := make([]Value, 0, len(x))
		for _, item := range x {
			iv, err := FromAny(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, iv)
		}
		return NewArray(items...), nil
	case map[string]any:
		obj := NewObject()
		for k, val := range x {
			vv, err := FromAny(val)
			if err != nil {
				return Value{}, err
			}
			obj.Set(k, vv)
		}
		return obj, nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValueType, v)
	}
}
