package store

// TripFields holds the raw input fields of a historical case as they appear
// in the JSON case files.
type TripFields struct {
	TripDurationDays    int     `json:"trip_duration_days"`
	MilesTraveled       float64 `json:"miles_traveled"`
	TotalReceiptsAmount float64 `json:"total_receipts_amount"`
}

// CaseRecord is one entry of a case file. Labeled (public) cases wrap the
// input fields in an "input" object and carry the expected output; private
// cases list the input fields at the top level and have no label.
type CaseRecord struct {
	Input          *TripFields `json:"input,omitempty"`
	ExpectedOutput *float64    `json:"expected_output,omitempty"`

	// Flat fields used by the private case file shape.
	TripFields
}

// Fields returns the input fields regardless of which file shape the record
// was decoded from.
func (c CaseRecord) Fields() TripFields {
	if c.Input != nil {
		return *c.Input
	}
	return c.TripFields
}

// Labeled reports whether the record carries an expected output.
func (c CaseRecord) Labeled() bool {
	return c.ExpectedOutput != nil
}
