package builder

import (
	"testing"

	"surveyforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryLabels(entries []domain.Entry) []string {
	labels := make([]string, 0, len(entries))
	for _, e := range entries {
		labels = append(labels, e.Label)
	}
	return labels
}

func TestAddEntry_CountBasedNumbering(t *testing.T) {
	newID := sequentialIDs()
	q, err := NewQuestion(domain.SingleChoice, newID)
	require.NoError(t, err)

	q, err = AddEntry(q, KindOption, newID)
	require.NoError(t, err)
	q, err = AddEntry(q, KindOption, newID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Option 1", "Option 2", "Option 3"}, entryLabels(q.Options))

	// Labels are numbered by count at insertion time and never renumbered:
	// deleting the middle option and adding again repeats "Option 3".
	q, err = RemoveEntry(q, KindOption, q.Options[1].ID)
	require.NoError(t, err)
	q, err = AddEntry(q, KindOption, newID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Option 1", "Option 3", "Option 3"}, entryLabels(q.Options))
}

func TestAddEntry_MatrixRowsAndColumns(t *testing.T) {
	newID := sequentialIDs()
	q, err := NewQuestion(domain.Matrix, newID)
	require.NoError(t, err)

	q, err = AddEntry(q, KindRow, newID)
	require.NoError(t, err)
	q, err = AddEntry(q, KindColumn, newID)
	require.NoError(t, err)

	assert.Equal(t, []string{"Row 1", "Row 2"}, entryLabels(q.Rows))
	assert.Equal(t, []string{"Column 1", "Column 2"}, entryLabels(q.Columns))
}

func TestAddEntry_KindMismatch(t *testing.T) {
	newID := sequentialIDs()

	paragraph, err := NewQuestion(domain.Paragraph, newID)
	require.NoError(t, err)
	_, err = AddEntry(paragraph, KindOption, newID)
	require.Error(t, err)

	choice, err := NewQuestion(domain.SingleChoice, newID)
	require.NoError(t, err)
	_, err = AddEntry(choice, KindRow, newID)
	require.Error(t, err)
}

func TestUpdateEntry(t *testing.T) {
	newID := sequentialIDs()
	q, err := NewQuestion(domain.Dropdown, newID)
	require.NoError(t, err)

	updated, err := UpdateEntry(q, KindOption, q.Options[0].ID, "Red")
	require.NoError(t, err)
	assert.Equal(t, "Red", updated.Options[0].Label)
	// The original question value is untouched.
	assert.Equal(t, "Option 1", q.Options[0].Label)

	_, err = UpdateEntry(q, KindOption, "missing", "Blue")
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrEntryNotFound, domainErr.Code)
}

func TestRemoveEntry(t *testing.T) {
	newID := sequentialIDs()
	q, err := NewQuestion(domain.MultipleChoice, newID)
	require.NoError(t, err)
	q, err = AddEntry(q, KindOption, newID)
	require.NoError(t, err)

	removed, err := RemoveEntry(q, KindOption, q.Options[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Option 2"}, entryLabels(removed.Options))

	_, err = RemoveEntry(q, KindOption, "missing")
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrEntryNotFound, domainErr.Code)
}
