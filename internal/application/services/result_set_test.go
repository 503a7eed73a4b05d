package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hospitalcompare/internal/application/services"
	"hospitalcompare/internal/domain/entities"
)

func resultSetFixture() *services.ResultSet {
	return services.NewResultSet(1, "Cardiology", entities.NewSearchCriteria(1, "Chennai", ""), []entities.Hospital{
		{ID: 10, Name: "City Care"},
		{ID: 20, Name: "Lakeside"},
		{ID: 30, Name: "Green Cross"},
	})
}

func TestResultSet_StartsWithEmptySelection(t *testing.T) {
	results := resultSetFixture()

	assert.Equal(t, 3, results.Len())
	assert.False(t, results.Empty())
	assert.Zero(t, results.SelectedCount())
	assert.Empty(t, results.SelectedIDs())
}

func TestResultSet_ToggleIsItsOwnInverse(t *testing.T) {
	results := resultSetFixture()

	assert.NoError(t, results.Toggle(10))
	assert.True(t, results.IsSelected(10))

	assert.NoError(t, results.Toggle(10))
	assert.False(t, results.IsSelected(10))
	assert.Zero(t, results.SelectedCount())
}

func TestResultSet_TogglePreservesToggleOrder(t *testing.T) {
	results := resultSetFixture()

	assert.NoError(t, results.Toggle(30))
	assert.NoError(t, results.Toggle(10))
	assert.NoError(t, results.Toggle(20))

	assert.Equal(t, []int64{30, 10, 20}, results.SelectedIDs())

	// Removing from the middle keeps the remaining order.
	assert.NoError(t, results.Toggle(10))
	assert.Equal(t, []int64{30, 20}, results.SelectedIDs())
}

func TestResultSet_ToggleRejectsUnknownHospital(t *testing.T) {
	results := resultSetFixture()

	err := results.Toggle(99)

	assert.ErrorIs(t, err, services.ErrUnknownHospital)
	assert.Zero(t, results.SelectedCount())
}

func TestResultSet_HospitalLookup(t *testing.T) {
	results := resultSetFixture()

	hospital, ok := results.Hospital(20)
	assert.True(t, ok)
	assert.Equal(t, "Lakeside", hospital.Name)

	_, ok = results.Hospital(99)
	assert.False(t, ok)
}

func TestResultSet_SelectedIDsReturnsACopy(t *testing.T) {
	results := resultSetFixture()
	assert.NoError(t, results.Toggle(10))
	assert.NoError(t, results.Toggle(20))

	ids := results.SelectedIDs()
	ids[0] = 999

	assert.Equal(t, []int64{10, 20}, results.SelectedIDs())
}

func TestResultSet_EmptyResults(t *testing.T) {
	results := services.NewResultSet(1, "Cardiology", entities.NewSearchCriteria(1, "Chennai", ""), nil)

	assert.True(t, results.Empty())
	assert.ErrorIs(t, results.Toggle(10), services.ErrUnknownHospital)

	// A nil backend list is normalized so the payload encodes as [].
	assert.NotNil(t, results.Hospitals())
	assert.Empty(t, results.Hospitals())
}
