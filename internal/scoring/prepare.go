package scoring

import "time"

// ResponseMetadata carries the scoring attributes captured alongside a
// stored response. All fields are optional; missing values fall back to
// defaults during preparation.
type ResponseMetadata struct {
	Dimension      DimensionKey `json:"dimension,omitempty"`
	Subdimension   string       `json:"subdimension,omitempty"`
	AnswerType     AnswerType   `json:"answer_type,omitempty"`
	AnswerValue    RawValue     `json:"answer_value,omitempty"`
	QuestionWeight float64      `json:"question_weight,omitempty"`
}

// StoredResponse is one persisted assessment response in its raw stored
// shape, before normalization.
type StoredResponse struct {
	QuestionCode string           `json:"question_code"`
	Metadata     ResponseMetadata `json:"metadata"`
	AnsweredAt   string           `json:"answered_at,omitempty"`
}

// PrepareAnswers converts stored responses into normalized answers ready for
// scoring. Missing metadata falls back to defaults: dimension "individual",
// subdimension "general", answer type "scale", weight 1. A zero weight also
// falls back to 1. Unparseable or missing timestamps are stamped with the
// given clock; a nil clock uses time.Now. Preparation never fails, so a
// partially captured response still scores.
func PrepareAnswers(responses []StoredResponse, now func() time.Time) []Answer {
	if now == nil {
		now = time.Now
	}
	answers := make([]Answer, 0, len(responses))
	for _, r := range responses {
		dimension := r.Metadata.Dimension
		if dimension == "" {
			dimension = DimensionIndividual
		}
		subdimension := r.Metadata.Subdimension
		if subdimension == "" {
			subdimension = "general"
		}
		answerType := r.Metadata.AnswerType
		if answerType == "" {
			answerType = AnswerScale
		}
		weight := r.Metadata.QuestionWeight
		if weight == 0 {
			weight = 1
		}
		value := r.Metadata.AnswerValue
		if value.IsAbsent() {
			value = Number(0)
		}

		answeredAt := now()
		if r.AnsweredAt != "" {
			if t, err := time.Parse(time.RFC3339, r.AnsweredAt); err == nil {
				answeredAt = t
			}
		}

		answers = append(answers, Answer{
			QuestionCode: r.QuestionCode,
			Dimension:    dimension,
			Subdimension: subdimension,
			AnswerType:   answerType,
			Value:        Normalize(answerType, value),
			Weight:       weight,
			AnsweredAt:   answeredAt,
		})
	}
	return answers
}
