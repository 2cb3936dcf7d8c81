package adapters

import (
	"github.com/vallme2003/top-coder-challenge/pkg/models/domain"
	"github.com/vallme2003/top-coder-challenge/pkg/models/store"
)

func MapStoreCaseToDomainTrip(rec store.CaseRecord) domain.Trip {
	fields := rec.Fields()
	return domain.Trip{
		Days:     fields.TripDurationDays,
		Miles:    fields.MilesTraveled,
		Receipts: fields.TotalReceiptsAmount,
	}
}
