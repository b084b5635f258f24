package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"

	"github.com/xcollantes/loggio/core"
)

// jsonIndent matches the four-space indentation of the original output.
const jsonIndent = "    "

// MessageConfig holds the formatter-level defaults read at format time.
type MessageConfig struct {
	// Truncate enables truncation of long messages by default.
	Truncate bool
	// TruncateLength is the default maximum message length before
	// truncation applies.
	TruncateLength int
	// JSONFormat pretty-prints positional arguments as JSON by default.
	JSONFormat bool
}

// Request is a single formatting request. Pointer fields override the
// MessageConfig defaults when non-nil.
type Request struct {
	Template       string
	Args           []core.Arg
	UserContext    map[string]interface{}
	JSONFormat     *bool
	Truncate       *bool
	TruncateLength *int
}

// Format runs the message pipeline in fixed order: JSON-encode the
// arguments, interpolate them into the template, prefix the user
// context, truncate. JSON and interpolation failures are terminal: they
// return a self-describing message immediately and skip the remaining
// stages. Format never returns an error; malformed requests degrade to
// annotated text so a log call can never fail on formatting.
func (c MessageConfig) Format(req Request) string {
	args := req.Args

	if resolveBool(req.JSONFormat, c.JSONFormat) && len(args) > 0 {
		encoded, err := encodeArgs(args)
		if err != nil {
			return req.Template + " - [JSON FORMAT ERROR: " + err.Error() + "] - Args: " + describeArgs(req.Args)
		}
		args = encoded
	}

	message := req.Template
	if len(args) > 0 {
		interpolated, err := interpolate(req.Template, args)
		if err != nil {
			return req.Template + " - [FORMAT ERROR: " + err.Error() + "] - Args: " + describeArgs(args)
		}
		message = interpolated
	}

	if uid, ok := req.UserContext["uid"]; ok {
		message = fmt.Sprintf("%v", uid) + ": " + message
	}

	if resolveBool(req.Truncate, c.Truncate) {
		maxLength := c.TruncateLength
		if req.TruncateLength != nil {
			maxLength = *req.TruncateLength
		}
		message = truncate(message, maxLength)
	}

	return message
}

func resolveBool(override *bool, fallback bool) bool {
	if override != nil {
		return *override
	}
	return fallback
}

// encodeArgs independently pretty-prints each argument as JSON.
// Arguments that cannot be represented in JSON at all (channels,
// functions, NaN) are stringified instead of failing; an argument whose
// own MarshalJSON reports an error aborts the whole stage.
func encodeArgs(args []core.Arg) ([]core.Arg, error) {
	encoded := make([]core.Arg, len(args))
	for i, a := range args {
		if a.Type == core.JSONType {
			encoded[i] = a
			continue
		}
		data, err := json.MarshalIndent(argValue(a), "", jsonIndent)
		if err != nil {
			var typeErr *json.UnsupportedTypeError
			var valueErr *json.UnsupportedValueError
			if errors.As(err, &typeErr) || errors.As(err, &valueErr) {
				encoded[i] = core.Arg{Type: core.JSONType, Str: a.StringValue()}
				continue
			}
			return nil, err
		}
		encoded[i] = core.Arg{Type: core.JSONType, Str: string(data)}
	}
	return encoded, nil
}

func argValue(a core.Arg) interface{} {
	switch a.Type {
	case core.StringType:
		return a.Str
	case core.IntType:
		return a.Int64
	case core.FloatType:
		return a.Float64
	case core.BoolType:
		return a.Int64 == 1
	default:
		return a.Any
	}
}

// interpolate substitutes args into the template using printf-style
// positional specifiers. Supported verbs: %s, %d, %f, %v and the %%
// escape. A count or type mismatch returns an error describing the
// failure; the caller surfaces it inline.
func interpolate(template string, args []core.Arg) (string, error) {
	var b strings.Builder
	b.Grow(len(template) + 16)

	next := 0
	for i := 0; i < len(template); i++ {
		ch := template[i]
		if ch != '%' {
			b.WriteByte(ch)
			continue
		}
		if i+1 >= len(template) {
			return "", errors.New("incomplete format")
		}
		i++
		verb := template[i]
		if verb == '%' {
			b.WriteByte('%')
			continue
		}
		if next >= len(args) {
			return "", errors.New("not enough arguments for format string")
		}
		rendered, err := renderVerb(verb, args[next])
		if err != nil {
			return "", err
		}
		b.WriteString(rendered)
		next++
	}

	if next < len(args) {
		return "", errors.New("not all arguments converted during string formatting")
	}
	return b.String(), nil
}

func renderVerb(verb byte, arg core.Arg) (string, error) {
	switch verb {
	case 's', 'v':
		return arg.StringValue(), nil
	case 'd':
		switch arg.Type {
		case core.IntType:
			return strconv.FormatInt(arg.Int64, 10), nil
		case core.FloatType:
			return strconv.FormatInt(int64(arg.Float64), 10), nil
		}
		return "", errors.Newf("%%d format: a number is required, not %s", arg.Type.Kind())
	case 'f':
		switch arg.Type {
		case core.FloatType:
			return strconv.FormatFloat(arg.Float64, 'f', 6, 64), nil
		case core.IntType:
			return strconv.FormatFloat(float64(arg.Int64), 'f', 6, 64), nil
		}
		return "", errors.Newf("%%f format: a number is required, not %s", arg.Type.Kind())
	default:
		return "", errors.Newf("unsupported format character %q", string(verb))
	}
}

// describeArgs renders the argument tuple for the inline error text.
func describeArgs(args []core.Arg) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.StringValue()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// truncate cuts message to maxLength characters and appends the marker
// carrying the original character count. Counts are rune based so a
// multi-byte character is never split.
func truncate(message string, maxLength int) string {
	runes := []rune(message)
	if len(runes) <= maxLength {
		return message
	}
	return string(runes[:maxLength]) + "... [TRUNCATED, LENGTH: " + strconv.Itoa(len(runes)) + "]"
}
