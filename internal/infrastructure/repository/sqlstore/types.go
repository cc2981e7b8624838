package sqlstore

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// dbTime reads timestamps from either driver. postgres hands back time.Time; sqlite may hand
// back text in one of its own layouts.
type dbTime time.Time

var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
}

func (t *dbTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = dbTime{}
		return nil
	case time.Time:
		*t = dbTime(v.UTC())
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("scan time: unsupported type %T", src)
	}
}

func (t *dbTime) parse(raw string) error {
	raw = strings.TrimSpace(raw)
	for _, layout := range sqliteTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			*t = dbTime(parsed.UTC())
			return nil
		}
	}
	return fmt.Errorf("scan time: unrecognized value %q", raw)
}

func (t dbTime) Value() (driver.Value, error) {
	return time.Time(t).UTC(), nil
}

func (t dbTime) Time() time.Time {
	return time.Time(t)
}

// nullString maps "" to NULL.
func nullString(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}

func stringOrEmpty(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}
