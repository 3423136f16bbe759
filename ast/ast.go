// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an abstract value tree for JSON documents, and a
// parser that constructs value trees from JSON source text.
package ast

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/jdom"
)

// A Value is an arbitrary JSON value: null, a Boolean, a Number, a
// String, an Array, or an Object. A Value is immutable once returned by
// the parser; the parser never mutates or shares a value it has already
// delivered.
type Value interface {
	// JSON returns a compact JSON representation of the value.
	JSON() string
}

// Null represents the JSON null constant. All occurrences of null in a
// document are represented by this singleton.
var Null Value = nullValue{}

type nullValue struct{}

// JSON satisfies the Value interface.
func (nullValue) JSON() string { return "null" }

func (nullValue) String() string { return "null" }

// A Bool is a JSON Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// A String is a JSON string value. Its contents are fully unescaped.
type String string

// JSON satisfies the Value interface. The contents are escaped and
// quoted.
func (s String) JSON() string { return jdom.Quote(string(s)) }

// A Number is a JSON number. It records the numeral exactly as it
// appeared in its source text, and whether the value is an exact integer
// or a floating-point quantity is determined solely by the shape of that
// numeral, never by its magnitude: a numeral with no fraction and no
// exponent is an integer, anything else is floating-point.
type Number struct {
	text string
}

// Int constructs a Number representing the exact integer z.
func Int(z int64) Number { return Number{text: strconv.FormatInt(z, 10)} }

// Float constructs a Number representing the floating-point value f.
// The numeral always carries a fraction or exponent marker, so that a
// Float reparses as floating-point even when its value is integral.
func Float(f float64) Number {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return Number{text: s}
}

// IsInt reports whether n is an exact integer, meaning its numeral has
// neither a fraction nor an exponent part.
func (n Number) IsInt() bool { return !strings.ContainsAny(n.text, ".eE") }

// Int64 returns the value of n as an int64. It panics if n is not an
// exact integer, or if the value does not fit in an int64.
func (n Number) Int64() int64 {
	v, err := strconv.ParseInt(n.text, 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Float64 returns the value of n as a float64.
func (n Number) Float64() float64 {
	v, err := strconv.ParseFloat(n.text, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// JSON satisfies the Value interface, returning the source numeral.
func (n Number) JSON() string { return n.text }

func (n Number) String() string { return n.text }

// An Array is a sequence of values. The order of elements is the order
// in which they appeared in the source.
type Array []Value

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// An Object is a sequence of key-value members. It is not a map: members
// appear in the order they appeared in the source, and duplicate keys are
// all retained as separate members.
type Object []*Member

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// JSON satisfies the Value interface.
func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(jdom.Quote(m.Key))
		sb.WriteByte(':')
		sb.WriteString(m.Value.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
func Field(key string, v Value) *Member { return &Member{Key: key, Value: v} }

// ToValue converts a plain Go value into an ast.Value. It supports nil,
// bool, string, int, int64, float64, []any, map[string]any (with keys
// emitted in sorted order), and values that already implement Value.
// ToValue panics if v has any other type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Int(int64(t))
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		out := make(Object, len(keys))
		for i, key := range keys {
			out[i] = Field(key, ToValue(t[key]))
		}
		return out
	case Value:
		return t
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}
