package scoring

// Dimension describes one measured dimension: its display name, weight in
// the assessment design, and UI color.
type Dimension struct {
	Key         DimensionKey
	Name        string
	Description string
	Weight      float64
	Color       string
}

// QuestionOption is one selectable answer for a multiChoice question. Value
// is the normalized score the option maps to.
type QuestionOption struct {
	Value float64
	Label string
}

// Question describes one question in the bank.
type Question struct {
	Code         string
	Dimension    DimensionKey
	Subdimension string
	Text         string
	AnswerType   AnswerType
	Weight       float64
	ScaleMin     int
	ScaleMax     int
	ScaleLabels  map[int]string
	Options      []QuestionOption
	Required     bool
}

// Config is the immutable assessment definition scoring rules run against.
// Construct it once with NewConfig and share it freely; all lookups are
// read-only.
type Config struct {
	dimensions     []Dimension
	dimensionIndex map[DimensionKey]Dimension
	questions      []Question
	questionIndex  map[string]Question
}

// NewConfig builds a Config from a dimension registry and question bank.
// Inputs are copied, so callers may reuse their slices.
func NewConfig(dimensions []Dimension, questions []Question) *Config {
	c := &Config{
		dimensions:     make([]Dimension, len(dimensions)),
		dimensionIndex: make(map[DimensionKey]Dimension, len(dimensions)),
		questions:      make([]Question, len(questions)),
		questionIndex:  make(map[string]Question, len(questions)),
	}
	copy(c.dimensions, dimensions)
	copy(c.questions, questions)
	for _, d := range c.dimensions {
		c.dimensionIndex[d.Key] = d
	}
	for _, q := range c.questions {
		c.questionIndex[q.Code] = q
	}
	return c
}

// Dimensions returns the dimension registry in declaration order.
func (c *Config) Dimensions() []Dimension {
	out := make([]Dimension, len(c.dimensions))
	copy(out, c.dimensions)
	return out
}

// Dimension looks up a dimension by key.
func (c *Config) Dimension(key DimensionKey) (Dimension, bool) {
	d, ok := c.dimensionIndex[key]
	return d, ok
}

// DimensionName returns the display name for a dimension key, falling back
// to the raw key for dimensions outside the registry.
func (c *Config) DimensionName(key DimensionKey) string {
	if d, ok := c.dimensionIndex[key]; ok {
		return d.Name
	}
	return string(key)
}

// DimensionColor returns the UI color for a dimension key, falling back to a
// neutral gray for dimensions outside the registry.
func (c *Config) DimensionColor(key DimensionKey) string {
	if d, ok := c.dimensionIndex[key]; ok {
		return d.Color
	}
	return "#666"
}

// Questions returns the question bank in declaration order.
func (c *Config) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// Question looks up a question by code.
func (c *Config) Question(code string) (Question, bool) {
	q, ok := c.questionIndex[code]
	return q, ok
}

// QuestionsForDimension returns the bank questions belonging to one
// dimension, in declaration order.
func (c *Config) QuestionsForDimension(key DimensionKey) []Question {
	var out []Question
	for _, q := range c.questions {
		if q.Dimension == key {
			out = append(out, q)
		}
	}
	return out
}
