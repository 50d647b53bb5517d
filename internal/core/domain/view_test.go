package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_StringRoundTrip(t *testing.T) {
	for _, v := range AllViews() {
		parsed, err := ParseView(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
		assert.True(t, v.IsValid())
		assert.NotEqual(t, "Unknown", v.Title())
	}
}

func TestView_Names(t *testing.T) {
	assert.Equal(t, "upload", ViewUpload.String())
	assert.Equal(t, "key_dates", ViewKeyDates.String())
	assert.Equal(t, "Clause Review", ViewClauseReview.Title())
	assert.Equal(t, "unknown", View(99).String())
	assert.False(t, View(99).IsValid())
	assert.False(t, View(-1).IsValid())
}

func TestView_RequiresDocument(t *testing.T) {
	assert.False(t, ViewUpload.RequiresDocument())
	for _, v := range AllViews()[1:] {
		assert.True(t, v.RequiresDocument(), v.String())
	}
}

func TestParseView_Unknown(t *testing.T) {
	_, err := ParseView("settings")
	assert.ErrorIs(t, err, ErrUnknownView)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
