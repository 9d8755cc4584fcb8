package services

import (
	"batlog/internal/models"

	"github.com/gookit/validate"
)

// AtBatForm is a candidate record as authored by the UI, pre-normalization.
// BattingSide stays free-form here; the normalizer canonicalizes it on the
// way to the datastore.
type AtBatForm struct {
	Date        string              `json:"date" validate:"required"`
	PitchType   string              `json:"pitchType" validate:"required"`
	Timing      string              `json:"timing" validate:"required"`
	PitchZone   int                 `json:"pitchZone" validate:"required|min:1|max:9"`
	Contact     int                 `json:"contact" validate:"required|min:1|max:5"`
	HitType     string              `json:"hitType" validate:"required"`
	HitLocation *models.HitLocation `json:"hitLocation" validate:"required"`
	BattingSide string              `json:"battingSide"`
}

// Messages keys by the json-tag field names, which is how the validator
// reports fields back.
func (f *AtBatForm) Messages() map[string]string {
	return validate.MS{
		"date.required":        "Date is required",
		"pitchType.required":   "Pitch type is required",
		"timing.required":      "Timing is required",
		"pitchZone.required":   "Pitch location is required",
		"pitchZone.min":        "Pitch location must be between 1 and 9",
		"pitchZone.max":        "Pitch location must be between 1 and 9",
		"contact.required":     "Contact is required",
		"contact.min":          "Contact must be between 1 and 5",
		"contact.max":          "Contact must be between 1 and 5",
		"hitType.required":     "Hit type is required",
		"hitLocation.required": "Hit location is required",
	}
}

// ValidateAtBatForm checks a candidate form for completeness. The returned
// map is field name to human-readable reason; an empty map means the form may
// be submitted. A zero pitch zone counts as "not chosen": zone 1 exists, so
// unset must never collide with it, which the required rule guarantees.
//
// Batting side is demanded only from switch hitters; single-side hitters get
// an implicit default and are never asked.
func ValidateAtBatForm(form *AtBatForm, hittingSide string) map[string]string {
	errs := make(map[string]string)

	v := validate.Struct(form)
	// Every failing field is reported, not just the first.
	v.StopOnError = false
	if !v.Validate() {
		for field, messages := range v.Errors {
			errs[field] = messages.One()
		}
	}

	if hittingSide == models.HittingSideSwitch && form.BattingSide == "" {
		errs["battingSide"] = "Please select which side you hit from"
	}

	return errs
}
