package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vallme2003/top-coder-challenge/pkg/models/domain"
	"github.com/vallme2003/top-coder-challenge/pkg/models/store"
)

func TestMapStoreCaseToDomainTrip(t *testing.T) {
	expected := 581.58
	rec := store.CaseRecord{
		Input: &store.TripFields{
			TripDurationDays:    5,
			MilesTraveled:       250,
			TotalReceiptsAmount: 150.75,
		},
		ExpectedOutput: &expected,
	}

	trip := MapStoreCaseToDomainTrip(rec)
	assert.Equal(t, domain.Trip{Days: 5, Miles: 250, Receipts: 150.75}, trip)
}

func TestMapStoreCaseToDomainTrip_FlatLayout(t *testing.T) {
	rec := store.CaseRecord{
		TripFields: store.TripFields{
			TripDurationDays:    3,
			MilesTraveled:       93,
			TotalReceiptsAmount: 1.42,
		},
	}

	trip := MapStoreCaseToDomainTrip(rec)
	assert.Equal(t, domain.Trip{Days: 3, Miles: 93, Receipts: 1.42}, trip)
}
