package ballast

import (
	"fmt"
	"time"
)

// Kind identifies the shape of a Value.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is one node of a parsed structured document, independent of the
// format it came from. The zero Value is nil.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	seq  []Value
	obj  Document
}

// Document is a mapping from string keys to recursive values. One Document is
// produced per structured source; the merger keeps exactly one active at a
// time. Callers must treat a Document handed out by a MergedResult as
// read-only.
type Document map[string]Value

// Kind returns the value's shape.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload and whether the value is a bool.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Int returns the integer payload and whether the value is an integer.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }

// Float returns the value as a float64. Integers are promoted.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	}
	return 0, false
}

// Str returns the string payload and whether the value is a string.
func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }

// Sequence returns the element slice and whether the value is a sequence.
func (v Value) Sequence() ([]Value, bool) { return v.seq, v.kind == KindSequence }

// Mapping returns the nested document and whether the value is a mapping.
func (v Value) Mapping() (Document, bool) { return v.obj, v.kind == KindMapping }

// Interface converts the value back into the plain form the decoders produce.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, e := range v.seq {
			out[i] = e.Interface()
		}
		return out
	case KindMapping:
		return v.obj.Interface()
	default:
		return nil
	}
}

// Lookup returns the value stored under key.
func (d Document) Lookup(key string) (Value, bool) {
	v, ok := d[key]
	return v, ok
}

// Interface converts the document back into a plain nested map.
func (d Document) Interface() map[string]any {
	out := make(map[string]any, len(d))
	for k, v := range d {
		out[k] = v.Interface()
	}
	return out
}

// FromAny normalizes a decoded tree (as returned by the TOML, YAML, and JSON
// decoders) into a Value. Integer widths collapse to int64, float32 to
// float64, and datetimes to RFC 3339 strings.
func FromAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Value{}, nil
	case bool:
		return Value{kind: KindBool, b: v}, nil
	case int:
		return Value{kind: KindInt, i: int64(v)}, nil
	case int8:
		return Value{kind: KindInt, i: int64(v)}, nil
	case int16:
		return Value{kind: KindInt, i: int64(v)}, nil
	case int32:
		return Value{kind: KindInt, i: int64(v)}, nil
	case int64:
		return Value{kind: KindInt, i: v}, nil
	case uint:
		return Value{kind: KindInt, i: int64(v)}, nil
	case uint8:
		return Value{kind: KindInt, i: int64(v)}, nil
	case uint16:
		return Value{kind: KindInt, i: int64(v)}, nil
	case uint32:
		return Value{kind: KindInt, i: int64(v)}, nil
	case uint64:
		return Value{kind: KindInt, i: int64(v)}, nil
	case float32:
		return Value{kind: KindFloat, f: float64(v)}, nil
	case float64:
		return Value{kind: KindFloat, f: v}, nil
	case string:
		return Value{kind: KindString, s: v}, nil
	case time.Time:
		return Value{kind: KindString, s: v.Format(time.RFC3339)}, nil
	case []any:
		seq := make([]Value, len(v))
		for i, e := range v {
			ev, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			seq[i] = ev
		}
		return Value{kind: KindSequence, seq: seq}, nil
	case map[string]any:
		doc, err := DocumentFromAny(v)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindMapping, obj: doc}, nil
	case map[any]any:
		converted := make(map[string]any, len(v))
		for key, val := range v {
			ks, ok := key.(string)
			if !ok {
				return Value{}, fmt.Errorf("non-string mapping key %v", key)
			}
			converted[ks] = val
		}
		return FromAny(converted)
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}

// DocumentFromAny normalizes a decoded top-level mapping into a Document.
func DocumentFromAny(raw map[string]any) (Document, error) {
	doc := make(Document, len(raw))
	for k, v := range raw {
		val, err := FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		doc[k] = val
	}
	return doc, nil
}
