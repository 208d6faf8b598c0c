package vacationapimodels

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	t.Run(`serializes as YYYY-MM-DD`, func(t *testing.T) {
		d := NewDate(time.Date(2026, time.March, 9, 15, 30, 0, 0, time.UTC))
		raw, err := json.Marshal(d)
		require.NoError(t, err)
		require.Equal(t, `"2026-03-09"`, string(raw))
	})

	t.Run(`parses and drops the time component`, func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2026-03-09"`), &d))
		require.Equal(t, 2026, d.Year())
		require.Equal(t, time.March, d.Month())
		require.Equal(t, 9, d.Day())
	})

	t.Run(`rejects other formats`, func(t *testing.T) {
		var d Date
		require.Error(t, json.Unmarshal([]byte(`"09.03.2026"`), &d))
	})

	t.Run(`null reads as zero date`, func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`null`), &d))
		require.True(t, d.IsZero())
	})
}
