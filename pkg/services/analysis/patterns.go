package analysis

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/vallme2003/top-coder-challenge/pkg/adapters"
	"github.com/vallme2003/top-coder-challenge/pkg/models/domain"
	"github.com/vallme2003/top-coder-challenge/pkg/models/store"
	"github.com/vallme2003/top-coder-challenge/pkg/services/engine"
)

// Settings contains configurable thresholds for case-set analysis.
type Settings struct {
	// ErrorThreshold is the mean absolute error above which a bucket is
	// flagged as poorly modeled.
	ErrorThreshold float64
	// HighErrorThreshold escalates the finding severity.
	HighErrorThreshold float64
	// MinBucketSize is the minimum number of cases before a bucket is
	// worth flagging.
	MinBucketSize int
}

// DefaultSettings returns the default analysis configuration.
func DefaultSettings() Settings {
	return Settings{
		ErrorThreshold:     100,
		HighErrorThreshold: 250,
		MinBucketSize:      3,
	}
}

type bucketStats struct {
	count       int
	sumExpected float64
	sumAbsError float64
}

func (b *bucketStats) add(expected, absError float64) {
	b.count++
	b.sumExpected += expected
	b.sumAbsError += absError
}

func (b *bucketStats) meanExpected() float64 {
	if b.count == 0 {
		return 0
	}
	return b.sumExpected / float64(b.count)
}

func (b *bucketStats) meanAbsError() float64 {
	if b.count == 0 {
		return 0
	}
	return b.sumAbsError / float64(b.count)
}

// Analyze buckets the labeled case set by trip length, efficiency and
// receipt tier, measures how well the engine models each bucket, and flags
// the segments with outsized error.
func Analyze(
	ctx context.Context,
	records []store.CaseRecord,
	eng engine.Engine,
	settings Settings,
) (*domain.Report, error) {
	logger := zerolog.Ctx(ctx)

	dayBuckets := map[string]*bucketStats{}
	efficiencyBuckets := map[string]*bucketStats{}
	receiptBuckets := map[string]*bucketStats{}
	centsPremium := struct{ special, regular bucketStats }{}

	labeled := 0
	var totalExpected float64
	for i, rec := range records {
		if !rec.Labeled() {
			continue
		}
		labeled++

		trip := adapters.MapStoreCaseToDomainTrip(rec)
		expected := *rec.ExpectedOutput
		totalExpected += expected

		estimate, err := eng.Estimate(ctx, trip)
		if err != nil {
			return nil, fmt.Errorf("case %d failed: %w", i, err)
		}
		absError := math.Abs(estimate.Amount - expected)

		addTo(dayBuckets, dayBucket(trip.Days), expected, absError)
		addTo(efficiencyBuckets, efficiencyBucket(trip.MilesPerDay()), expected, absError)
		addTo(receiptBuckets, receiptBucket(trip.Receipts), expected, absError)

		f := engine.ExtractFeatures(trip)
		if f.EndsIn49 || f.EndsIn99 {
			centsPremium.special.add(expected, absError)
		} else {
			centsPremium.regular.add(expected, absError)
		}
	}

	if labeled == 0 {
		return nil, fmt.Errorf("no labeled cases to analyze")
	}

	report := &domain.Report{
		Title:       "Case Set Analysis",
		CaseCount:   labeled,
		TotalAmount: totalExpected,
		Currency:    "USD",
		Sections: []domain.ReportSection{
			bucketSection("Trip Length Buckets", dayBuckets, dayBucketOrder),
			bucketSection("Efficiency Buckets", efficiencyBuckets, efficiencyBucketOrder),
			bucketSection("Receipt Tiers", receiptBuckets, receiptBucketOrder),
		},
	}

	findings := collectFindings(dayBuckets, efficiencyBuckets, receiptBuckets, settings)
	if centsPremium.special.count > 0 && centsPremium.regular.count > 0 {
		report.Sections = append(report.Sections, centsSection(centsPremium.special, centsPremium.regular))
	}
	report.Sections = append(report.Sections, findingsSection(findings))

	logger.Info().Int("cases", labeled).Int("findings", len(findings)).Msg("analysis complete")
	return report, nil
}

func addTo(buckets map[string]*bucketStats, key string, expected, absError float64) {
	b, ok := buckets[key]
	if !ok {
		b = &bucketStats{}
		buckets[key] = b
	}
	b.add(expected, absError)
}

var (
	dayBucketOrder        = []string{"1", "2-3", "4-6", "7+"}
	efficiencyBucketOrder = []string{"<50 mi/day", "50-150 mi/day", ">=150 mi/day"}
	receiptBucketOrder    = []string{"<$100", "$100-$500", ">=$500"}
)

func dayBucket(days int) string {
	switch {
	case days == 1:
		return "1"
	case days <= 3:
		return "2-3"
	case days <= 6:
		return "4-6"
	default:
		return "7+"
	}
}

func efficiencyBucket(milesPerDay float64) string {
	switch {
	case milesPerDay < 50:
		return "<50 mi/day"
	case milesPerDay < 150:
		return "50-150 mi/day"
	default:
		return ">=150 mi/day"
	}
}

func receiptBucket(receipts float64) string {
	switch {
	case receipts < 100:
		return "<$100"
	case receipts < 500:
		return "$100-$500"
	default:
		return ">=$500"
	}
}

func bucketSection(title string, buckets map[string]*bucketStats, order []string) domain.ReportSection {
	section := domain.ReportSection{
		Title:   title,
		Summary: map[string]interface{}{},
	}
	for _, key := range order {
		b, ok := buckets[key]
		if !ok {
			continue
		}
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        key,
			Value:       b.count,
			Unit:        "cases",
			Description: fmt.Sprintf("mean expected $%.2f, mean abs error $%.2f", b.meanExpected(), b.meanAbsError()),
		})
	}
	return section
}

func centsSection(special, regular bucketStats) domain.ReportSection {
	return domain.ReportSection{
		Title: "Receipt Cents Endings",
		Summary: map[string]interface{}{
			".49/.99 cases": special.count,
			"premium":       fmt.Sprintf("$%.2f", special.meanExpected()-regular.meanExpected()),
		},
	}
}

func collectFindings(
	dayBuckets, efficiencyBuckets, receiptBuckets map[string]*bucketStats,
	settings Settings,
) []domain.Finding {
	var findings []domain.Finding
	groups := []struct {
		prefix  string
		buckets map[string]*bucketStats
		order   []string
	}{
		{"days", dayBuckets, dayBucketOrder},
		{"efficiency", efficiencyBuckets, efficiencyBucketOrder},
		{"receipts", receiptBuckets, receiptBucketOrder},
	}

	for _, g := range groups {
		for _, key := range g.order {
			b, ok := g.buckets[key]
			if !ok || b.count < settings.MinBucketSize || b.meanAbsError() <= settings.ErrorThreshold {
				continue
			}
			severity := domain.SeverityMedium
			if b.meanAbsError() > settings.HighErrorThreshold {
				severity = domain.SeverityHigh
			}
			findings = append(findings, domain.Finding{
				ID:          fmt.Sprintf("high_error_%s_%s", g.prefix, key),
				Segment:     fmt.Sprintf("%s:%s", g.prefix, key),
				Issue:       "high_error",
				Description: fmt.Sprintf("Mean absolute error $%.2f over %d cases.", b.meanAbsError(), b.count),
				Recommendation: "Run formula discovery over this segment or refine the fallback " +
					"coefficients covering it.",
				Severity: severity,
			})
		}
	}
	return findings
}

func findingsSection(findings []domain.Finding) domain.ReportSection {
	section := domain.ReportSection{
		Title:   "Findings",
		Summary: map[string]interface{}{"total": len(findings)},
	}
	for _, f := range findings {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        f.Segment,
			Value:       f.Severity.String(),
			Description: f.Description + " " + f.Recommendation,
		})
	}
	return section
}
