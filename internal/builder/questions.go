// Package builder holds the pure question-sequence editing operations of the
// survey builder: add, merge, remove, reorder and option/row/column
// sub-editing. The functions never touch persistence; the survey service
// applies them to a working copy and pushes the result through the
// repository.
package builder

import (
	"fmt"

	"surveyforge/internal/domain"
)

// IDGenerator produces fresh unique identifiers for questions and entries.
type IDGenerator func() string

// NewQuestion synthesizes a question of the requested type with a default
// title derived from the type's display name and a type-appropriate default
// payload: one "Option 1" for choice-like types, scale 5 for rating, one
// statement and two choice labels for likert, one row and one column for
// matrix.
func NewQuestion(questionType domain.QuestionType, newID IDGenerator) (domain.Question, error) {
	if !questionType.IsValid() {
		return domain.Question{}, domain.NewInvalidQuestionTypeError(string(questionType))
	}
	q := domain.Question{
		ID:         newID(),
		Type:       questionType,
		Title:      fmt.Sprintf("New %s Question", questionType.DisplayName()),
		IsRequired: false,
	}
	switch {
	case questionType.HasOptions():
		q.Options = []domain.Entry{{ID: newID(), Label: "Option 1"}}
	case questionType == domain.Rating:
		q.Scale = 5
	case questionType == domain.Likert:
		q.Statements = []string{"Statement 1"}
		q.Choices = []string{"Agree", "Disagree"}
	case questionType == domain.Matrix:
		q.Rows = []domain.Entry{{ID: newID(), Label: "Row 1"}}
		q.Columns = []domain.Entry{{ID: newID(), Label: "Column 1"}}
	}
	return q, nil
}

// AppendQuestion returns questions with q appended at the end.
func AppendQuestion(questions []domain.Question, q domain.Question) []domain.Question {
	out := make([]domain.Question, 0, len(questions)+1)
	out = append(out, questions...)
	return append(out, q)
}

// MergeQuestion shallow-merges the non-nil fields of patch onto the question
// with the given identifier, leaving order and all other questions
// unchanged. A type change resets the payload to the new type's defaults
// before the patch's payload fields apply, so a question can never keep a
// payload belonging to its former type.
func MergeQuestion(questions []domain.Question, questionID string, patch domain.QuestionPatch, newID IDGenerator) ([]domain.Question, error) {
	idx := indexOf(questions, questionID)
	if idx < 0 {
		return nil, domain.NewQuestionNotFoundError(questionID)
	}

	out := make([]domain.Question, len(questions))
	copy(out, questions)
	q := out[idx]

	if patch.Type != nil && *patch.Type != q.Type {
		reset, err := NewQuestion(*patch.Type, newID)
		if err != nil {
			return nil, err
		}
		reset.ID = q.ID
		reset.Title = q.Title
		reset.Description = q.Description
		reset.IsRequired = q.IsRequired
		q = reset
	}
	if patch.Title != nil {
		q.Title = *patch.Title
	}
	if patch.Description != nil {
		q.Description = *patch.Description
	}
	if patch.IsRequired != nil {
		q.IsRequired = *patch.IsRequired
	}
	if patch.Options != nil {
		q.Options = *patch.Options
	}
	if patch.Scale != nil {
		q.Scale = *patch.Scale
	}
	if patch.Statements != nil {
		q.Statements = *patch.Statements
	}
	if patch.Choices != nil {
		q.Choices = *patch.Choices
	}
	if patch.Rows != nil {
		q.Rows = *patch.Rows
	}
	if patch.Columns != nil {
		q.Columns = *patch.Columns
	}

	q.Normalize()
	if err := q.Validate(); err != nil {
		return nil, err
	}
	out[idx] = q
	return out, nil
}

// RemoveQuestion removes the question with the given identifier. Subsequent
// questions shift up; order is positional.
func RemoveQuestion(questions []domain.Question, questionID string) ([]domain.Question, error) {
	idx := indexOf(questions, questionID)
	if idx < 0 {
		return nil, domain.NewQuestionNotFoundError(questionID)
	}
	out := make([]domain.Question, 0, len(questions)-1)
	out = append(out, questions[:idx]...)
	return append(out, questions[idx+1:]...), nil
}

// MoveQuestion performs the drag-reorder: the question at the source position
// is removed and reinserted at the destination position, shifting the
// intervening questions by one. When the destination is absent or equals the
// source the sequence is returned unchanged. The result is a pure
// permutation; only positions change.
func MoveQuestion(questions []domain.Question, sourceID, destinationID string) []domain.Question {
	if destinationID == "" || destinationID == sourceID {
		return questions
	}
	from := indexOf(questions, sourceID)
	to := indexOf(questions, destinationID)
	if from < 0 || to < 0 {
		return questions
	}

	out := make([]domain.Question, len(questions))
	copy(out, questions)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)

	tail := make([]domain.Question, 0, len(questions))
	tail = append(tail, out[:to]...)
	tail = append(tail, moved)
	return append(tail, out[to:]...)
}

func indexOf(questions []domain.Question, questionID string) int {
	for i := range questions {
		if questions[i].ID == questionID {
			return i
		}
	}
	return -1
}
