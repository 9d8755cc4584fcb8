package models

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// HitLocation is a batted-ball landing point, normalized to the field
// diagram's bounding box: (0,0) top-left, (1,1) bottom-right.
type HitLocation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

var ErrMalformedLocation = errors.New("malformed hit location")

// ParseHitLocation decodes the stored column form. This is the fail-loud
// parser: callers that can tolerate a corrupt value (the aggregation engine)
// must catch the error themselves.
func ParseHitLocation(stored string) (*HitLocation, error) {
	var raw struct {
		X *float64 `json:"x"`
		Y *float64 `json:"y"`
	}
	if err := json.Unmarshal([]byte(stored), &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedLocation, err)
	}
	if raw.X == nil || raw.Y == nil {
		return nil, fmt.Errorf("%w: missing coordinate", ErrMalformedLocation)
	}
	return &HitLocation{X: *raw.X, Y: *raw.Y}, nil
}

// Storage returns the serialized column form.
func (h *HitLocation) Storage() (string, error) {
	raw, err := json.Marshal(h)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

const (
	DirectionPull     = "Pull"
	DirectionMiddle   = "Up the Middle"
	DirectionOpposite = "Opposite Field"
)

// Direction buckets the landing point by horizontal third. This is a list
// filter classification, distinct from the spray chart's raw coordinates.
func (h *HitLocation) Direction() string {
	if h.X < 0.33 {
		return DirectionPull
	}
	if h.X > 0.67 {
		return DirectionOpposite
	}
	return DirectionMiddle
}
