package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vallme2003/top-coder-challenge/pkg/models/domain"
)

func TestExtractFeatures(t *testing.T) {
	f := ExtractFeatures(domain.Trip{Days: 5, Miles: 250, Receipts: 150.75})

	assert.Equal(t, 5.0, f.Days)
	assert.Equal(t, 50.0, f.MilesPerDay)
	assert.Equal(t, 30.15, f.ReceiptsPerDay)
	assert.Equal(t, 1250.0, f.DaysMiles)
	assert.Equal(t, 753.75, f.DaysReceipts)
	assert.InDelta(t, 37.6875, f.MilesReceiptsScaled, 1e-9)
	assert.InDelta(t, 188.4375, f.ThreeWayScaled, 1e-9)
	assert.InDelta(t, math.Log1p(150.75), f.LogReceipts, 1e-12)
	assert.InDelta(t, 1/151.75, f.InvReceipts, 1e-12)
	assert.InDelta(t, 150.75*150.75/1e6, f.ReceiptsSqScaled, 1e-12)
	assert.Equal(t, 75, f.Cents)
	assert.True(t, f.FiveDay)
	assert.False(t, f.EndsIn49)
}

func TestExtractFeatures_CentsFlags(t *testing.T) {
	assert.True(t, ExtractFeatures(domain.Trip{Days: 1, Receipts: 12.49}).EndsIn49)
	assert.True(t, ExtractFeatures(domain.Trip{Days: 1, Receipts: 0.99}).EndsIn99)
	assert.False(t, ExtractFeatures(domain.Trip{Days: 1, Receipts: 12.5}).EndsIn49)
}

func TestExtractFeatures_CentsTruncate(t *testing.T) {
	// 2176.49*100 is 217648.99999... in float, so the cents truncate to 48.
	f := ExtractFeatures(domain.Trip{Days: 1, Receipts: 2176.49})
	assert.Equal(t, 48, f.Cents)
	assert.False(t, f.EndsIn49)

	// 150.49*100 lands just above 15049 and keeps the flag.
	assert.True(t, ExtractFeatures(domain.Trip{Days: 1, Receipts: 150.49}).EndsIn49)
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 123.46, RoundCents(123.456))
	assert.Equal(t, 123.45, RoundCents(123.454))
	assert.Equal(t, 100.0, RoundCents(100))
}
