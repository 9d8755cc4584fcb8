package stats

import "batlog/internal/models"

// Query selects which slice of an owner's records the dashboard summarizes.
type Query struct {
	PitchType   string
	BattingSide string
	Last        int
	// SwitchHitter gates the batting side filter: single-side hitters are
	// never asked for a side and see all of their records.
	SwitchHitter bool
}

// Summary is the full dashboard payload derived from one pass over the
// filtered recency slice.
type Summary struct {
	SampleSize     int           `json:"sampleSize"`
	AverageContact float64       `json:"averageContact"`
	ContactLabel   string        `json:"contactLabel"`
	ZoneHeat       [9]string     `json:"zoneHeat"`
	SprayPoints    []SprayPoint  `json:"sprayPoints"`
	Timing         TimingCounts  `json:"timing"`
	HitTypes       HitTypeCounts `json:"hitTypes"`
}

// BuildSummary computes every dashboard view over the date-descending input.
func BuildSummary(records []models.AtBat, q Query) Summary {
	filtered := FilterPitchType(records, q.PitchType)
	if q.SwitchHitter && q.BattingSide != "" {
		filtered = FilterBattingSide(filtered, q.BattingSide)
	}

	recent := RecentSlice(filtered, NormalizeLast(q.Last))

	avg := AverageContact(recent)
	return Summary{
		SampleSize:     len(recent),
		AverageContact: avg,
		ContactLabel:   ContactLabel(avg),
		ZoneHeat:       ZoneHeat(recent),
		SprayPoints:    SprayPoints(recent),
		Timing:         TimingBreakdown(recent),
		HitTypes:       HitTypeBreakdown(recent),
	}
}
