package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hospitalcompare/internal/application/services"
	"hospitalcompare/internal/domain/entities"
)

func comparisonFixture() []entities.Hospital {
	return []entities.Hospital{
		{ID: 1, Name: "City Care", Price: 500, WaitingTimeMinutes: 30, AverageRating: 4.2},
		{ID: 2, Name: "Lakeside", Price: 500, WaitingTimeMinutes: 20, AverageRating: 4.8},
		{ID: 3, Name: "Green Cross", Price: 700, WaitingTimeMinutes: 20, AverageRating: 4.2},
	}
}

func TestComputeBadges_FlagsOptimalValuesWithTies(t *testing.T) {
	badges := services.ComputeBadges(comparisonFixture())

	assert.Len(t, badges, 3)

	// Hospital 1 ties for best price only.
	assert.Equal(t, services.Badges{BestPrice: true}, badges[1])

	// Hospital 2 holds all three: ties best price and best wait, alone on rating.
	assert.Equal(t, services.Badges{BestPrice: true, BestRating: true, BestWaitTime: true}, badges[2])

	// Hospital 3 ties for best wait only.
	assert.Equal(t, services.Badges{BestWaitTime: true}, badges[3])
}

func TestComputeBadges_OrderIndependent(t *testing.T) {
	hospitals := comparisonFixture()
	reversed := []entities.Hospital{hospitals[2], hospitals[0], hospitals[1]}

	assert.Equal(t, services.ComputeBadges(hospitals), services.ComputeBadges(reversed))
}

func TestComputeBadges_SingleHospitalHoldsEverything(t *testing.T) {
	badges := services.ComputeBadges([]entities.Hospital{
		{ID: 7, Price: 900, WaitingTimeMinutes: 45, AverageRating: 3.1},
	})

	assert.Equal(t, services.Badges{BestPrice: true, BestRating: true, BestWaitTime: true}, badges[7])
	assert.True(t, badges[7].Any())
}

func TestComputeBadges_EmptyInput(t *testing.T) {
	assert.Empty(t, services.ComputeBadges(nil))
}

func TestBadges_Any(t *testing.T) {
	assert.False(t, services.Badges{}.Any())
	assert.True(t, services.Badges{BestRating: true}.Any())
}
