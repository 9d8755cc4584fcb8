package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestAtBat_AfterFind_DecodesLocation(t *testing.T) {
	ab := &AtBat{RawLocation: strPtr(`{"x":0.2,"y":0.8}`)}

	require.NoError(t, ab.AfterFind(nil))
	require.NotNil(t, ab.Location)
	assert.Equal(t, 0.2, ab.Location.X)
	assert.Equal(t, 0.8, ab.Location.Y)
	assert.False(t, ab.LocationCorrupt)
}

func TestAtBat_AfterFind_CorruptIsSoft(t *testing.T) {
	ab := &AtBat{RawLocation: strPtr("{broken")}

	// A corrupt stored string must not fail the read.
	require.NoError(t, ab.AfterFind(nil))
	assert.Nil(t, ab.Location)
	assert.True(t, ab.LocationCorrupt)
}

func TestAtBat_EditLocation_CorruptIsLoud(t *testing.T) {
	ab := &AtBat{RawLocation: strPtr("{broken")}

	_, err := ab.EditLocation()
	assert.ErrorIs(t, err, ErrMalformedLocation)
}

func TestAtBat_EditLocation_AbsentIsNil(t *testing.T) {
	ab := &AtBat{}

	loc, err := ab.EditLocation()
	require.NoError(t, err)
	assert.Nil(t, loc)
}

func TestAtBat_SetLocation(t *testing.T) {
	ab := &AtBat{}
	require.NoError(t, ab.SetLocation(&HitLocation{X: 0.5, Y: 0.25}))
	require.NotNil(t, ab.RawLocation)
	assert.JSONEq(t, `{"x":0.5,"y":0.25}`, *ab.RawLocation)

	require.NoError(t, ab.SetLocation(nil))
	assert.Nil(t, ab.RawLocation)
	assert.Nil(t, ab.Location)
}

func TestAtBat_Clone_IsDeep(t *testing.T) {
	ab := &AtBat{Contact: 4}
	require.NoError(t, ab.SetLocation(&HitLocation{X: 0.1, Y: 0.9}))

	clone := ab.Clone()
	clone.Location.X = 0.99
	*clone.RawLocation = "changed"

	assert.Equal(t, 0.1, ab.Location.X)
	assert.JSONEq(t, `{"x":0.1,"y":0.9}`, *ab.RawLocation)
}
