package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PitchTypeFastball = "Fastball"
	PitchTypeOffspeed = "Offspeed"

	TimingEarly  = "Early"
	TimingOnTime = "On Time"
	TimingLate   = "Late"

	HitTypeGrounder  = "Grounder"
	HitTypeLineDrive = "Line Drive"
	HitTypeFlyball   = "Flyball"
)

// AtBat is one logged plate appearance. The hit location is persisted as a
// serialized string column; everything above the repository only sees the
// parsed Location (nil when absent) plus LocationCorrupt when the stored
// string failed to parse.
type AtBat struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      string    `gorm:"column:user_id;index;not null" json:"userId"`
	Date        Date      `gorm:"not null" json:"date"`
	PitchType   string    `gorm:"column:pitch_type;not null" json:"pitchType"`
	Timing      string    `gorm:"not null" json:"timing"`
	PitchZone   int       `gorm:"column:pitch_location;not null" json:"pitchZone"`
	Contact     int       `gorm:"not null" json:"contact"`
	HitType     string    `gorm:"column:hit_type;not null" json:"hitType"`
	RawLocation *string   `gorm:"column:hit_location" json:"-"`
	BattingSide string    `gorm:"column:batting_side;not null" json:"battingSide"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`

	Location        *HitLocation `gorm:"-" json:"hitLocation"`
	LocationCorrupt bool         `gorm:"-" json:"-"`
}

func (AtBat) TableName() string {
	return "at_bats"
}

// AfterFind decodes the stored location. A corrupt string does not fail the
// read: the record surfaces with a nil location and the corrupt flag set, so
// read paths stay soft while edit prefill can still fail loud via EditLocation.
func (a *AtBat) AfterFind(_ *gorm.DB) error {
	if a.RawLocation == nil {
		return nil
	}
	loc, err := ParseHitLocation(*a.RawLocation)
	if err != nil {
		a.Location = nil
		a.LocationCorrupt = true
		return nil
	}
	a.Location = loc
	return nil
}

// SetLocation keeps the struct and column forms in sync before a write.
func (a *AtBat) SetLocation(loc *HitLocation) error {
	a.Location = loc
	a.LocationCorrupt = false
	if loc == nil {
		a.RawLocation = nil
		return nil
	}
	stored, err := loc.Storage()
	if err != nil {
		return err
	}
	a.RawLocation = &stored
	return nil
}

// EditLocation is the fail-loud accessor used to pre-populate an edit form:
// a stored string that cannot be parsed is an error here, never a silent nil.
func (a *AtBat) EditLocation() (*HitLocation, error) {
	if a.RawLocation == nil {
		return nil, nil
	}
	return ParseHitLocation(*a.RawLocation)
}

// Clone returns a deep copy, used to capture rows for the undo buffer.
func (a *AtBat) Clone() *AtBat {
	clone := *a
	if a.RawLocation != nil {
		raw := *a.RawLocation
		clone.RawLocation = &raw
	}
	if a.Location != nil {
		loc := *a.Location
		clone.Location = &loc
	}
	return &clone
}
