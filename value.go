// Value coercion.
//
// Raw field text is decoded into one of three types, first match wins:
// all ASCII digits becomes an integer, the interchange date layout becomes a
// timestamp, anything else stays a string. Coercion never fails. Encoding is
// the inverse and is what the serializer writes.
package mtif

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the interchange timestamp format (MM/DD/YYYY hh:mm:ss AM|PM).
const DateLayout = "01/02/2006 03:04:05 PM"

var datePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4} (0[1-9]|1[0-2]):\d{2}:\d{2} [AP]M$`)

// Kind is the type held by a Value.
type Kind uint8

const (
	KindNone   Kind = iota // unset
	KindString             // opaque text
	KindInt                // decimal integer
	KindTime               // wall-clock timestamp, stored in UTC
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindTime:
		return "time"
	default:
		return "none"
	}
}

// Value is a typed field value. The zero Value is unset, which is distinct
// from a set but empty string.
type Value struct {
	kind Kind
	s    string
	i    int64
	t    time.Time
}

func StringValue(s string) Value { return Value{kind: KindString, s: s} }
func IntValue(n int64) Value { return Value{kind: KindInt, i: n} }
func TimeValue(t time.Time) Value { return Value{kind: KindTime, t: t} }
func (v Value) Kind() Kind { return v.kind }
func (v Value) IsSet() bool { return v.kind != KindNone }
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }
func (v Value) Time() (time.Time, bool) { return v.t, v.kind == KindTime }

// Empty reports whether there is nothing to write for v. Only unset values
// and empty strings are empty; integers and timestamps never are.
func (v Value) Empty() bool {
	return v.kind == KindNone || (v.kind == KindString && v.s == "")
}

// Decode coerces raw field text into a typed value.
func Decode(raw string) Value {
	if digits(raw) {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return IntValue(n)
		}
	}
	if datePattern.MatchString(raw) {
		// Timestamps carry no zone; UTC holds the wall clock unchanged.
		if t, err := time.ParseInLocation(DateLayout, raw, time.UTC); err == nil && t.Format(DateLayout) == raw {
			return TimeValue(t)
		}
	}
	return StringValue(raw)
}

// String encodes v in its interchange form. Unset values encode as "".
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindTime:
		return v.t.Format(DateLayout)
	default:
		return ""
	}
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindInt:
		return v.i == o.i
	case KindTime:
		return v.t.Equal(o.t)
	}
	return true
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) < 0
}
