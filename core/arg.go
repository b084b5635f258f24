package core

import (
	"fmt"
	"strconv"
)

// ArgType represents the type of a positional argument value
type ArgType uint8

const (
	StringType ArgType = iota
	IntType
	FloatType
	BoolType
	// JSONType carries a pre-rendered JSON text produced by the JSON
	// stage of the formatting pipeline.
	JSONType
	AnyType
)

// Kind returns the human-readable name of the type, used in
// interpolation error text.
func (t ArgType) Kind() string {
	switch t {
	case StringType:
		return "string"
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case BoolType:
		return "bool"
	case JSONType:
		return "json"
	default:
		return "any"
	}
}

// Arg is a positional argument for printf-style template interpolation.
// Values are encoded into fixed-size numeric fields wherever possible;
// Any exists as a fallback for arbitrary types.
type Arg struct {
	Type    ArgType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// StringValue returns the string representation of the argument's value
func (a Arg) StringValue() string {
	switch a.Type {
	case StringType, JSONType:
		return a.Str
	case IntType:
		return strconv.FormatInt(a.Int64, 10)
	case FloatType:
		return strconv.FormatFloat(a.Float64, 'g', -1, 64)
	case BoolType:
		return strconv.FormatBool(a.Int64 == 1)
	case AnyType:
		return fmt.Sprintf("%v", a.Any)
	default:
		return ""
	}
}
