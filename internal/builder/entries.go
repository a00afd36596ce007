package builder

import (
	"fmt"

	"surveyforge/internal/domain"
)

// EntryKind selects which labelled list of a question a sub-edit targets.
type EntryKind string

const (
	KindOption EntryKind = "options"
	KindRow    EntryKind = "rows"
	KindColumn EntryKind = "columns"
)

// IsValid reports whether k names a known entry list.
func (k EntryKind) IsValid() bool {
	return k == KindOption || k == KindRow || k == KindColumn
}

func (k EntryKind) defaultLabel(position int) string {
	switch k {
	case KindRow:
		return fmt.Sprintf("Row %d", position)
	case KindColumn:
		return fmt.Sprintf("Column %d", position)
	default:
		return fmt.Sprintf("Option %d", position)
	}
}

func (k EntryKind) get(q *domain.Question) *[]domain.Entry {
	switch k {
	case KindRow:
		return &q.Rows
	case KindColumn:
		return &q.Columns
	default:
		return &q.Options
	}
}

// allowedOn reports whether the question type carries this entry list.
func (k EntryKind) allowedOn(t domain.QuestionType) bool {
	if k == KindOption {
		return t.HasOptions()
	}
	return t == domain.Matrix
}

// AddEntry appends a new entry with a generated identifier and a
// positionally-numbered default label ("Option N" where N is the current
// count plus one at insertion time). Labels are not renumbered after
// deletions, so they may become non-sequential; that matches the builder's
// interactive behavior.
func AddEntry(q domain.Question, kind EntryKind, newID IDGenerator) (domain.Question, error) {
	if !kind.allowedOn(q.Type) {
		return q, domain.NewInvalidInputError(fmt.Sprintf("question type %s has no %s", q.Type, kind))
	}
	list := kind.get(&q)
	entries := make([]domain.Entry, 0, len(*list)+1)
	entries = append(entries, *list...)
	entries = append(entries, domain.Entry{
		ID:    newID(),
		Label: kind.defaultLabel(len(entries) + 1),
	})
	*list = entries
	return q, nil
}

// UpdateEntry replaces the label of the entry matching entryID.
func UpdateEntry(q domain.Question, kind EntryKind, entryID, label string) (domain.Question, error) {
	if !kind.allowedOn(q.Type) {
		return q, domain.NewInvalidInputError(fmt.Sprintf("question type %s has no %s", q.Type, kind))
	}
	list := kind.get(&q)
	entries := make([]domain.Entry, len(*list))
	copy(entries, *list)
	for i := range entries {
		if entries[i].ID == entryID {
			entries[i].Label = label
			*list = entries
			return q, nil
		}
	}
	return q, domain.NewEntryNotFoundError(entryID)
}

// RemoveEntry removes the entry matching entryID.
func RemoveEntry(q domain.Question, kind EntryKind, entryID string) (domain.Question, error) {
	if !kind.allowedOn(q.Type) {
		return q, domain.NewInvalidInputError(fmt.Sprintf("question type %s has no %s", q.Type, kind))
	}
	list := kind.get(&q)
	entries := make([]domain.Entry, 0, len(*list))
	found := false
	for i := range *list {
		if (*list)[i].ID == entryID {
			found = true
			continue
		}
		entries = append(entries, (*list)[i])
	}
	if !found {
		return q, domain.NewEntryNotFoundError(entryID)
	}
	*list = entries
	return q, nil
}
