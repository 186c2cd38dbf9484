package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scoreRequest struct {
	AssessmentID string `json:"assessment_id" validate:"required,max=64"`
	Dimension    string `json:"dimension" validate:"omitempty,dimension_key"`
	AnswerType   string `json:"answer_type" validate:"omitempty,answer_type"`
	Format       string `json:"format" validate:"omitempty,export_format"`
}

func TestValidate_CustomRules(t *testing.T) {
	v := New()

	valid := scoreRequest{
		AssessmentID: "asmt-123",
		Dimension:    "leadership",
		AnswerType:   "multiChoice",
		Format:       "xlsx",
	}
	assert.NoError(t, v.Validate(valid))

	invalid := scoreRequest{
		AssessmentID: "asmt-123",
		Dimension:    "spirituality",
		AnswerType:   "slider",
		Format:       "pdf",
	}
	err := v.Validate(invalid)
	require.Error(t, err)

	ve, ok := err.(ValidationErrors)
	require.True(t, ok)
	assert.Len(t, ve, 3)

	fields := make(map[string]string)
	for _, e := range ve {
		fields[e.Field] = e.Rule
	}
	assert.Equal(t, "dimension_key", fields["dimension"])
	assert.Equal(t, "answer_type", fields["answer_type"])
	assert.Equal(t, "export_format", fields["format"])
}

func TestValidate_RequiredUsesJSONNames(t *testing.T) {
	v := New()

	err := v.Validate(scoreRequest{})
	require.Error(t, err)

	ve, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, ve, 1)
	assert.Equal(t, "assessment_id", ve[0].Field)
	assert.Equal(t, "is required", ve[0].Message)
}
