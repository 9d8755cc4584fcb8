// Package stats is the dashboard aggregation engine: pure functions over an
// owner's at-bat records, already ordered date-descending by the repository.
// Every function tolerates empty input and returns newly built values; none
// mutates its input slice.
package stats

import (
	"math"
	"strings"

	"batlog/internal/models"
)

// MaxRecent caps the recency slice regardless of the requested count.
const MaxRecent = 25

// DefaultRecent is the slice size used when the caller picks none, or one
// that is not on the menu.
const DefaultRecent = 10

// RecentCounts are the user-selectable recency slice sizes.
var RecentCounts = []int{5, 10, 15, 20, 25}

// NormalizeLast snaps a requested slice size onto RecentCounts.
func NormalizeLast(n int) int {
	for _, c := range RecentCounts {
		if n == c {
			return n
		}
	}
	return DefaultRecent
}

// PitchTypeAll passes every record through the pitch type filter.
const PitchTypeAll = "all"

// FilterPitchType keeps records whose pitch type matches case-insensitively.
func FilterPitchType(records []models.AtBat, filter string) []models.AtBat {
	if filter == "" || strings.EqualFold(filter, PitchTypeAll) {
		return append([]models.AtBat(nil), records...)
	}
	out := make([]models.AtBat, 0, len(records))
	for _, ab := range records {
		if strings.EqualFold(ab.PitchType, filter) {
			out = append(out, ab)
		}
	}
	return out
}

// FilterBattingSide keeps records batted from the given side. Callers apply
// it only when the owner is a switch hitter; single-side hitters see all rows.
func FilterBattingSide(records []models.AtBat, side string) []models.AtBat {
	out := make([]models.AtBat, 0, len(records))
	for _, ab := range records {
		if strings.EqualFold(ab.BattingSide, side) {
			out = append(out, ab)
		}
	}
	return out
}

// FilterDirection keeps records whose hit location lands in the named
// horizontal third (Pull, Up the Middle, Opposite Field). Records without a
// usable location never match a direction filter.
func FilterDirection(records []models.AtBat, direction string) []models.AtBat {
	if direction == "" {
		return append([]models.AtBat(nil), records...)
	}
	out := make([]models.AtBat, 0, len(records))
	for _, ab := range records {
		if ab.Location != nil && strings.EqualFold(ab.Location.Direction(), direction) {
			out = append(out, ab)
		}
	}
	return out
}

// RecentSlice returns the first min(n, MaxRecent) records of the
// date-descending input, preserving order.
func RecentSlice(records []models.AtBat, n int) []models.AtBat {
	if n > MaxRecent {
		n = MaxRecent
	}
	if n < 0 {
		n = 0
	}
	if n > len(records) {
		n = len(records)
	}
	return append([]models.AtBat(nil), records[:n]...)
}

// AverageContact is the mean contact rating rounded to one decimal place.
// An empty slice averages to 0, not NaN.
func AverageContact(records []models.AtBat) float64 {
	if len(records) == 0 {
		return 0
	}
	total := 0
	for _, ab := range records {
		total += ab.Contact
	}
	return math.Round(float64(total)/float64(len(records))*10) / 10
}

// ContactLabel maps a rounded average to its quality band, top-down.
func ContactLabel(avg float64) string {
	switch {
	case avg == 0:
		return "No Data"
	case avg >= 4.5:
		return "Barreled"
	case avg >= 4:
		return "Good"
	case avg >= 3:
		return "Decent"
	case avg >= 2:
		return "Weak"
	default:
		return "Very Soft"
	}
}

const (
	ZoneNoData  = "no-data"
	ZoneHot     = "hot"
	ZoneNeutral = "neutral"
	ZoneCold    = "cold"
)

// ZoneHeat classifies each of the 9 strike-zone cells by the mean contact of
// the records pitched there. Zones are 1-indexed on the record, row-major
// from the top-left.
func ZoneHeat(records []models.AtBat) [9]string {
	var totals, counts [9]int
	for _, ab := range records {
		idx := ab.PitchZone - 1
		if idx >= 0 && idx < 9 {
			totals[idx] += ab.Contact
			counts[idx]++
		}
	}

	var zones [9]string
	for i := range zones {
		if counts[i] == 0 {
			zones[i] = ZoneNoData
			continue
		}
		avg := float64(totals[i]) / float64(counts[i])
		switch {
		case avg >= 4:
			zones[i] = ZoneHot
		case avg >= 2.5:
			zones[i] = ZoneNeutral
		default:
			zones[i] = ZoneCold
		}
	}
	return zones
}

// SprayPoint is one plotted batted ball.
type SprayPoint struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Contact int     `json:"contact"`
}

// SprayPoints extracts a point per record with a usable hit location.
// Records with an absent or corrupt location are dropped, not errors.
func SprayPoints(records []models.AtBat) []SprayPoint {
	points := make([]SprayPoint, 0, len(records))
	for _, ab := range records {
		if ab.Location == nil {
			continue
		}
		points = append(points, SprayPoint{X: ab.Location.X, Y: ab.Location.Y, Contact: ab.Contact})
	}
	return points
}

// TimingCounts is the distribution over the three timing values.
type TimingCounts struct {
	Early  int `json:"early"`
	OnTime int `json:"onTime"`
	Late   int `json:"late"`
}

// TimingBreakdown counts records per timing value; anything else is
// silently uncounted.
func TimingBreakdown(records []models.AtBat) TimingCounts {
	var counts TimingCounts
	for _, ab := range records {
		switch ab.Timing {
		case models.TimingEarly:
			counts.Early++
		case models.TimingOnTime:
			counts.OnTime++
		case models.TimingLate:
			counts.Late++
		}
	}
	return counts
}

// HitTypeCounts is the distribution over the three hit types.
type HitTypeCounts struct {
	Grounder  int `json:"grounder"`
	LineDrive int `json:"lineDrive"`
	Flyball   int `json:"flyball"`
}

// HitTypeBreakdown counts records per hit type; anything else is
// silently uncounted.
func HitTypeBreakdown(records []models.AtBat) HitTypeCounts {
	var counts HitTypeCounts
	for _, ab := range records {
		switch ab.HitType {
		case models.HitTypeGrounder:
			counts.Grounder++
		case models.HitTypeLineDrive:
			counts.LineDrive++
		case models.HitTypeFlyball:
			counts.Flyball++
		}
	}
	return counts
}
