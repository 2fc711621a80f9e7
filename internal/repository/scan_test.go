package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%art%", likePattern(" Art "))
	assert.Equal(t, "%100!%%", likePattern("100%"))
	assert.Equal(t, "%a!_b%", likePattern("a_b"))
	assert.Equal(t, "%wow!!%", likePattern("wow!"))
	assert.Equal(t, "%%", likePattern(""))
}

func TestDBTimeScan(t *testing.T) {
	want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	for _, src := range []any{
		"2035-04-01 20:00:00",
		[]byte("2035-04-01T20:00:00Z"),
		"2035-04-01 22:00:00+02:00",
		want.In(time.FixedZone("X", 3600)),
	} {
		var got time.Time
		require.NoError(t, dbTime{&got}.Scan(src), "%v", src)
		assert.True(t, want.Equal(got), "%v -> %v", src, got)
		assert.Equal(t, time.UTC, got.Location())
	}

	var got time.Time
	assert.Error(t, dbTime{&got}.Scan("tomorrow"))
	assert.Error(t, dbTime{&got}.Scan(42))
}

func TestFormatDBTime(t *testing.T) {
	in := time.Date(2035, 4, 1, 13, 0, 0, 999, time.FixedZone("PDT", -7*3600))
	assert.Equal(t, "2035-04-01 20:00:00", formatDBTime(in))
}
