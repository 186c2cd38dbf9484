package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		answerType AnswerType
		value      RawValue
		want       float64
	}{
		{"scale in range", AnswerScale, Number(75), 75},
		{"scale clamps high", AnswerScale, Number(150), 100},
		{"scale clamps low", AnswerScale, Number(-10), 0},
		{"scale non-numeric", AnswerScale, String("high"), 0},
		{"fear to confidence clamps", AnswerFearToConfidence, Number(120), 100},
		{"percentage clamps", AnswerPercentage, Number(101), 100},
		{"percentage non-numeric", AnswerPercentage, Bool(true), 0},
		{"multi choice passthrough", AnswerMultiChoice, Number(60), 60},
		{"multi choice not clamped", AnswerMultiChoice, Number(250), 250},
		{"multi choice non-numeric", AnswerMultiChoice, String("60"), 0},
		{"boolean true", AnswerBoolean, Bool(true), 100},
		{"boolean false", AnswerBoolean, Bool(false), 0},
		{"boolean yes string", AnswerBoolean, String("yes"), 100},
		{"boolean no string", AnswerBoolean, String("no"), 0},
		{"boolean one", AnswerBoolean, Number(1), 100},
		{"boolean zero", AnswerBoolean, Number(0), 0},
		{"unknown type passthrough", AnswerType("slider"), Number(42), 42},
		{"unknown type non-numeric", AnswerType("slider"), String("x"), 0},
		{"absent value", AnswerScale, Absent(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.answerType, tt.value))
		})
	}
}

func TestRawValue_JSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RawValue
	}{
		{"number", `42.5`, Number(42.5)},
		{"string", `"yes"`, String("yes")},
		{"bool", `true`, Bool(true)},
		{"null", `null`, Absent()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got RawValue
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)

			out, err := json.Marshal(got)
			require.NoError(t, err)
			assert.JSONEq(t, tt.in, string(out))
		})
	}
}

func TestRawValue_UnmarshalRejectsComposite(t *testing.T) {
	var got RawValue
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &got))
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &got))
}
