package engine

import (
	"math"

	"github.com/vallme2003/top-coder-challenge/pkg/models/domain"
)

// FeatureSet holds the derived quantities the estimators branch on. All
// interaction terms use the same scaling as the thresholds baked into the
// decision tree.
type FeatureSet struct {
	Days     float64
	Miles    float64
	Receipts float64

	MilesPerDay    float64
	ReceiptsPerDay float64

	DaysMiles           float64 // days * miles
	DaysReceipts        float64 // days * receipts
	MilesReceipts       float64 // miles * receipts
	ThreeWayScaled      float64 // days * miles * receipts / 1000
	MilesReceiptsScaled float64 // miles * receipts / 1000

	LogReceipts      float64 // log1p(receipts)
	InvReceipts      float64 // 1 / (1 + receipts)
	ReceiptsSqScaled float64 // receipts^2 / 1e6

	Cents    int // cents part of the receipts amount
	EndsIn49 bool
	EndsIn99 bool
	FiveDay  bool
}

// ExtractFeatures computes the feature set for a trip.
func ExtractFeatures(trip domain.Trip) FeatureSet {
	days := float64(trip.Days)
	// Cents are truncated, not rounded: amounts whose float product lands
	// just under the cent boundary classify as the cent below, matching the
	// legacy system's arithmetic.
	cents := int(trip.Receipts*100) % 100

	return FeatureSet{
		Days:     days,
		Miles:    trip.Miles,
		Receipts: trip.Receipts,

		MilesPerDay:    trip.MilesPerDay(),
		ReceiptsPerDay: trip.ReceiptsPerDay(),

		DaysMiles:           days * trip.Miles,
		DaysReceipts:        days * trip.Receipts,
		MilesReceipts:       trip.Miles * trip.Receipts,
		ThreeWayScaled:      days * trip.Miles * trip.Receipts / 1000,
		MilesReceiptsScaled: trip.Miles * trip.Receipts / 1000,

		LogReceipts:      math.Log1p(trip.Receipts),
		InvReceipts:      1 / (1 + trip.Receipts),
		ReceiptsSqScaled: trip.Receipts * trip.Receipts / 1e6,

		Cents:    cents,
		EndsIn49: cents == 49,
		EndsIn99: cents == 99,
		FiveDay:  trip.Days == 5,
	}
}

// RoundCents rounds a dollar amount to two decimal places.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
