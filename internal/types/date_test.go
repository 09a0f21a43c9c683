package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_RoundTrip(t *testing.T) {
	date, err := ParseDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", date.String())
	assert.Equal(t, NewDate(2025, time.March, 1), date)
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("03/01/2025")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDate_DaysSince(t *testing.T) {
	today := NewDate(2025, time.March, 1)

	assert.Equal(t, 0, today.DaysSince(today))
	assert.Equal(t, 1, NewDate(2025, time.March, 2).DaysSince(today))
	assert.Equal(t, 9, NewDate(2025, time.March, 10).DaysSince(today))
	assert.Equal(t, -9, NewDate(2025, time.February, 20).DaysSince(today))
}

func TestDate_JSONMarshaling(t *testing.T) {
	date := NewDate(2025, time.March, 1)

	data, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-01"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equal(date))
}

func TestDate_JSONZeroValue(t *testing.T) {
	var date Date

	data, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal([]byte("null"), &decoded))
	assert.True(t, decoded.IsZero())
}

func TestDate_Ordering(t *testing.T) {
	earlier := NewDate(2025, time.February, 20)
	later := NewDate(2025, time.March, 1)

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.False(t, earlier.Before(earlier))
}
