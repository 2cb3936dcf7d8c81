package domain

type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "low"
	}
}

// Finding flags a segment of the historical case set where the engine
// behaves unusually, together with a suggested follow-up.
type Finding struct {
	ID             string
	Segment        string // e.g. "days:4-6", "efficiency:high"
	Issue          string
	Description    string
	Recommendation string
	Severity       Severity
}
