package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSQL_Views(t *testing.T) {
	sql, err := mergeSQL(KindViews, 2)
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO repotraffic (rid, tdate, viewcount, vuniques) VALUES "+
			"($1, $2, $3, $4), ($5, $6, $7, $8) "+
			"ON CONFLICT (rid, tdate) DO UPDATE "+
			"SET viewcount = EXCLUDED.viewcount, vuniques = EXCLUDED.vuniques "+
			"WHERE EXCLUDED.viewcount > repotraffic.viewcount",
		sql)
}

func TestMergeSQL_Clones(t *testing.T) {
	sql, err := mergeSQL(KindClones, 1)
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO repotraffic (rid, tdate, clonecount, cuniques) VALUES "+
			"($1, $2, $3, $4) "+
			"ON CONFLICT (rid, tdate) DO UPDATE "+
			"SET clonecount = EXCLUDED.clonecount, cuniques = EXCLUDED.cuniques "+
			"WHERE EXCLUDED.clonecount > repotraffic.clonecount",
		sql)
}

func TestMergeSQL_GuardIsStrictlyGreater(t *testing.T) {
	// Equal incoming counts must be a no-op: the update guard uses >,
	// never >=, so replaying the same window leaves rows untouched.
	for _, kind := range []Kind{KindViews, KindClones} {
		sql, err := mergeSQL(kind, 3)
		require.NoError(t, err)
		assert.Contains(t, sql, "WHERE EXCLUDED.")
		assert.NotContains(t, sql, ">=")
	}
}

func TestMergeSQL_Errors(t *testing.T) {
	_, err := mergeSQL(KindViews, 0)
	assert.Error(t, err)
	_, err = mergeSQL(Kind("pulls"), 1)
	assert.Error(t, err)
}

func TestMergeArgs(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	args := mergeArgs(42, []TrafficDay{
		{Date: day1, Count: 5, Uniques: 3},
		{Date: day2, Count: 7, Uniques: 4},
	})
	require.Len(t, args, 8)
	assert.Equal(t, []any{int64(42), day1, int64(5), int64(3), int64(42), day2, int64(7), int64(4)}, args)
}
