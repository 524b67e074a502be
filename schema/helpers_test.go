package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthLevel(t *testing.T) {
	tests := []struct {
		health Health
		want   int
	}{
		{PoorHealth, 1},
		{FairHealth, 2},
		{GoodHealth, 3},
	}
	for _, tt := range tests {
		t.Run(string(tt.health), func(t *testing.T) {
			got, err := HealthLevel(tt.health)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []Health{"Dead", "good", ""} {
		_, err := HealthLevel(bad)
		assert.True(t, errors.Is(err, ErrUnknownHealth), "expected ErrUnknownHealth for %q", bad)
	}
}

func TestStewardLevel(t *testing.T) {
	for i, bucket := range AllStewardBuckets {
		got, err := StewardLevel(bucket)
		require.NoError(t, err)
		assert.Equal(t, i+1, got)
	}

	_, err := StewardLevel("5orMore")
	assert.ErrorIs(t, err, ErrUnknownSteward)
	assert.Contains(t, err.Error(), "5orMore")
}

func TestBoroughName(t *testing.T) {
	want := map[int]string{
		1: "Manhattan",
		2: "Bronx",
		3: "Brooklyn",
		4: "Queens",
		5: "Staten Island",
	}
	for code, name := range want {
		got, err := BoroughName(code)
		require.NoError(t, err)
		assert.Equal(t, name, got)
	}

	for _, code := range []int{0, 6, -1} {
		_, err := BoroughName(code)
		assert.ErrorIs(t, err, ErrUnknownBorough)
	}
}

func TestBoroughNameOrCode(t *testing.T) {
	assert.Equal(t, "Queens", BoroughNameOrCode(4))
	assert.Equal(t, "Borough 9", BoroughNameOrCode(9))
}

func TestHealthRank(t *testing.T) {
	assert.Less(t, HealthRank(PoorHealth), HealthRank(FairHealth))
	assert.Less(t, HealthRank(FairHealth), HealthRank(GoodHealth))
	assert.Greater(t, HealthRank("Dead"), HealthRank(GoodHealth))
}

func TestRawRecordCandidate(t *testing.T) {
	rec := RawRecord{Species: "pin oak", BoroughCode: 3, Health: GoodHealth, Steward: StewardNone, Count: 12}
	c := rec.Candidate()
	require.NotNil(t, c.Species)
	assert.Equal(t, "pin oak", *c.Species)
	assert.Equal(t, 3, *c.BoroughCode)
	assert.Equal(t, "Good", *c.Health)
	assert.Equal(t, "None", *c.Steward)
	assert.Equal(t, 12, *c.Count)
}

func TestSourceBackendIsDatabase(t *testing.T) {
	assert.True(t, SQLiteSource.IsDatabase())
	assert.True(t, MySQLSource.IsDatabase())
	assert.True(t, PostgreSQLSource.IsDatabase())
	assert.False(t, SocrataSource.IsDatabase())
	assert.False(t, FileSource.IsDatabase())
}
