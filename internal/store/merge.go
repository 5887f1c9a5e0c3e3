package store

import (
	"fmt"
	"strings"
)

// Kind selects which pair of traffic columns a merge writes.
type Kind string

const (
	KindViews  Kind = "views"
	KindClones Kind = "clones"
)

func (k Kind) columns() (count, uniques string, err error) {
	switch k {
	case KindViews:
		return "viewcount", "vuniques", nil
	case KindClones:
		return "clonecount", "cuniques", nil
	default:
		return "", "", fmt.Errorf("unknown traffic kind %q", k)
	}
}

// mergeSQL builds the multi-row upsert for n days of one traffic kind.
// Counts only move up: the DO UPDATE is guarded by a strictly-greater
// comparison, so replayed or stale windows are no-ops, and the uniques
// column is only ever written together with its count. Rows inserted for
// one kind leave the other kind's columns at their zero defaults.
func mergeSQL(kind Kind, n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("merge requires at least one day")
	}
	count, uniques, err := kind.columns()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO repotraffic (rid, tdate, %s, %s) VALUES ", count, uniques)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "($%d, $%d, $%d, $%d)", i*4+1, i*4+2, i*4+3, i*4+4)
	}
	fmt.Fprintf(&b, " ON CONFLICT (rid, tdate) DO UPDATE SET %[1]s = EXCLUDED.%[1]s, %[2]s = EXCLUDED.%[2]s WHERE EXCLUDED.%[1]s > repotraffic.%[1]s", count, uniques)
	return b.String(), nil
}

// mergeArgs flattens the series into the placeholder order of mergeSQL.
func mergeArgs(repoID int64, days []TrafficDay) []any {
	args := make([]any, 0, len(days)*4)
	for _, d := range days {
		args = append(args, repoID, d.Date, d.Count, d.Uniques)
	}
	return args
}
