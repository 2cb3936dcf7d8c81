package domain

import "fmt"

// Trip represents the input parameters for a single reimbursement calculation.
type Trip struct {
	Days     int     // trip duration in days
	Miles    float64 // total miles traveled
	Receipts float64 // total receipts amount in USD
}

// Validate checks that the trip parameters are usable for estimation.
func (t Trip) Validate() error {
	if t.Days < 1 {
		return fmt.Errorf("trip duration must be a positive number of days, got %d", t.Days)
	}
	if t.Miles < 0 {
		return fmt.Errorf("miles traveled must be non-negative, got %v", t.Miles)
	}
	if t.Receipts < 0 {
		return fmt.Errorf("receipts amount must be non-negative, got %v", t.Receipts)
	}
	return nil
}

// MilesPerDay returns the travel efficiency of the trip.
func (t Trip) MilesPerDay() float64 {
	if t.Days == 0 {
		return 0
	}
	return t.Miles / float64(t.Days)
}

// ReceiptsPerDay returns the daily spending rate of the trip.
func (t Trip) ReceiptsPerDay() float64 {
	if t.Days == 0 {
		return 0
	}
	return t.Receipts / float64(t.Days)
}
