package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// dbTimeLayout is the format start times are written in.  It sorts
// lexically, which SQLite relies on for ORDER BY and comparisons.
const dbTimeLayout = "2006-01-02 15:04:05"

// readLayouts are tried in order when a driver hands back text.
var readLayouts = []string{
	dbTimeLayout,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
}

// formatDBTime converts t to UTC second precision in dbTimeLayout.
func formatDBTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(dbTimeLayout)
}

// dbTime scans DATETIME columns from either driver: MySQL with
// parseTime returns time.Time, SQLite returns text.
type dbTime struct{ t *time.Time }

func (d dbTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d.t = v.UTC()
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case nil:
		*d.t = time.Time{}
		return nil
	}
	return fmt.Errorf("cannot scan %T into time", src)
}

func (d dbTime) parse(s string) error {
	s = strings.TrimSpace(s)
	for _, layout := range readLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d.t = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognised time %q", s)
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// nullable stores empty strings as NULL.
func nullable(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}

// likePattern builds a case-insensitive substring pattern for
// `foldExpr(col) LIKE ? ESCAPE '!'`.  Wildcards typed by the user match
// literally.
func likePattern(term string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return "%" + r.Replace(strings.ToLower(strings.TrimSpace(term))) + "%"
}
