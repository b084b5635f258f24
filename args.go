package loggio

import "github.com/xcollantes/loggio/core"

// Arg constructors for template interpolation

// Str creates a string argument
func Str(v string) core.Arg {
	return core.Arg{Type: core.StringType, Str: v}
}

// Int creates an int argument
func Int(v int) core.Arg {
	return core.Arg{Type: core.IntType, Int64: int64(v)}
}

// Int64 creates an int64 argument
func Int64(v int64) core.Arg {
	return core.Arg{Type: core.IntType, Int64: v}
}

// Float creates a float argument
func Float(v float64) core.Arg {
	return core.Arg{Type: core.FloatType, Float64: v}
}

// Bool creates a bool argument
func Bool(v bool) core.Arg {
	int64Val := int64(0)
	if v {
		int64Val = 1
	}
	return core.Arg{Type: core.BoolType, Int64: int64Val}
}

// JSONText creates an argument carrying already-rendered JSON text.
// The JSON stage passes it through untouched.
func JSONText(v string) core.Arg {
	return core.Arg{Type: core.JSONType, Str: v}
}

// Any creates an argument with an arbitrary value
func Any(v interface{}) core.Arg {
	return core.Arg{Type: core.AnyType, Any: v}
}
