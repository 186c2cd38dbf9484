package scoring

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type rawKind int

const (
	rawAbsent rawKind = iota
	rawNumber
	rawString
	rawBool
)

// RawValue is an untyped answer value as captured from a respondent: a
// number, a string, a boolean, or absent. Normalize folds it onto the 0-100
// scale; RawValue itself carries no scoring semantics.
type RawValue struct {
	kind rawKind
	num  float64
	str  string
	b    bool
}

// Number wraps a numeric raw value.
func Number(v float64) RawValue { return RawValue{kind: rawNumber, num: v} }

// String wraps a string raw value.
func String(v string) RawValue { return RawValue{kind: rawString, str: v} }

// Bool wraps a boolean raw value.
func Bool(v bool) RawValue { return RawValue{kind: rawBool, b: v} }

// Absent is the zero RawValue, used when no answer value was captured.
func Absent() RawValue { return RawValue{} }

// IsAbsent reports whether no value was captured.
func (v RawValue) IsAbsent() bool { return v.kind == rawAbsent }

// AsNumber returns the numeric value and whether the raw value is numeric.
func (v RawValue) AsNumber() (float64, bool) {
	if v.kind == rawNumber {
		return v.num, true
	}
	return 0, false
}

// UnmarshalJSON accepts JSON numbers, strings, booleans, and null.
func (v *RawValue) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*v = Absent()
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = Bool(b)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = Number(n)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*v = String(str)
		return nil
	}
	return fmt.Errorf("answer value must be a number, string, boolean, or null")
}

// MarshalJSON emits the wrapped value in its original JSON shape.
func (v RawValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case rawNumber:
		return json.Marshal(v.num)
	case rawString:
		return json.Marshal(v.str)
	case rawBool:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}

// String implements fmt.Stringer for logging.
func (v RawValue) String() string {
	switch v.kind {
	case rawNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case rawString:
		return v.str
	case rawBool:
		return strconv.FormatBool(v.b)
	default:
		return "<absent>"
	}
}

// Normalize folds a raw answer value onto the scoring scale.
//
// Scale, fearToConfidence, and percentage values are clamped to [0,100] and
// non-numeric values score 0. MultiChoice values pass through unchanged
// because the option set already fixes the range. Boolean treats true, the
// string "yes", and the number 1 as 100 and everything else as 0. Normalize
// is total: every input maps to a number, never an error.
func Normalize(answerType AnswerType, value RawValue) float64 {
	switch answerType {
	case AnswerScale, AnswerFearToConfidence, AnswerPercentage:
		n, ok := value.AsNumber()
		if !ok {
			return 0
		}
		return clamp(n, 0, 100)
	case AnswerMultiChoice:
		n, ok := value.AsNumber()
		if !ok {
			return 0
		}
		return n
	case AnswerBoolean:
		if value.kind == rawBool && value.b {
			return 100
		}
		if value.kind == rawString && value.str == "yes" {
			return 100
		}
		if value.kind == rawNumber && value.num == 1 {
			return 100
		}
		return 0
	default:
		n, ok := value.AsNumber()
		if !ok {
			return 0
		}
		return n
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
