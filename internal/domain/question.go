package domain

// QuestionType identifies one of the ten supported question kinds.
type QuestionType string

const (
	SingleChoice   QuestionType = "single-choice"
	MultipleChoice QuestionType = "multiple-choice"
	TextInput      QuestionType = "text-input"
	Paragraph      QuestionType = "paragraph"
	Dropdown       QuestionType = "dropdown"
	Rating         QuestionType = "rating"
	Likert         QuestionType = "likert"
	Date           QuestionType = "date"
	FileUpload     QuestionType = "file-upload"
	Matrix         QuestionType = "matrix"
)

var questionTypeNames = map[QuestionType]string{
	SingleChoice:   "Single Choice",
	MultipleChoice: "Multiple Choice",
	TextInput:      "Text Input",
	Paragraph:      "Paragraph",
	Dropdown:       "Dropdown",
	Rating:         "Rating",
	Likert:         "Likert Scale",
	Date:           "Date Picker",
	FileUpload:     "File Upload",
	Matrix:         "Matrix/Grid",
}

// AllQuestionTypes lists the supported types in toolbox order.
var AllQuestionTypes = []QuestionType{
	SingleChoice, MultipleChoice, TextInput, Paragraph, Dropdown,
	Rating, Likert, Date, FileUpload, Matrix,
}

// IsValid reports whether t is one of the ten supported kinds.
func (t QuestionType) IsValid() bool {
	_, ok := questionTypeNames[t]
	return ok
}

// DisplayName returns the human readable name for the type ("Single Choice" etc.).
func (t QuestionType) DisplayName() string {
	if name, ok := questionTypeNames[t]; ok {
		return name
	}
	return string(t)
}

// HasOptions reports whether the type carries an option list
// (single-choice, multiple-choice, dropdown).
func (t QuestionType) HasOptions() bool {
	return t == SingleChoice || t == MultipleChoice || t == Dropdown
}

// Entry is one labelled item inside a question payload: an option of a
// choice-like question, or a row/column of a matrix question.
type Entry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Question is one prompt within a Survey. The payload fields past IsRequired
// are type-dependent; Normalize zeroes the ones that do not belong to Type so
// a persisted question can never carry a mismatched payload.
type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	IsRequired  bool         `json:"isRequired"`

	Options    []Entry  `json:"options,omitempty"`    // choice-like types
	Scale      int      `json:"scale,omitempty"`      // rating
	Statements []string `json:"statements,omitempty"` // likert
	Choices    []string `json:"choices,omitempty"`    // likert
	Rows       []Entry  `json:"rows,omitempty"`       // matrix
	Columns    []Entry  `json:"columns,omitempty"`    // matrix
}

// Normalize clears payload fields that do not belong to the declared type.
func (q *Question) Normalize() {
	if !q.Type.HasOptions() {
		q.Options = nil
	}
	if q.Type != Rating {
		q.Scale = 0
	}
	if q.Type != Likert {
		q.Statements = nil
		q.Choices = nil
	}
	if q.Type != Matrix {
		q.Rows = nil
		q.Columns = nil
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.ID == "" {
		return NewInvalidInputError("question id is required")
	}
	if !q.Type.IsValid() {
		return NewInvalidQuestionTypeError(string(q.Type))
	}
	if q.Title == "" {
		return NewInvalidInputError("question title is required")
	}
	if q.Type == Rating {
		switch q.Scale {
		case 3, 5, 7, 10:
		default:
			return NewInvalidInputError("rating scale must be one of 3, 5, 7, 10")
		}
	}
	return nil
}

// QuestionPatch enumerates the question fields a partial update may change.
// Nil fields are left untouched. A type change resets the payload to the new
// type's defaults before the payload fields of the patch are applied.
type QuestionPatch struct {
	Type        *QuestionType
	Title       *string
	Description *string
	IsRequired  *bool
	Options     *[]Entry
	Scale       *int
	Statements  *[]string
	Choices     *[]string
	Rows        *[]Entry
	Columns     *[]Entry
}
