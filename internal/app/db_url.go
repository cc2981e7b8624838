package app

import (
	"net/url"
	"path"
	"strings"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/config"
)

// normalizeDBURL adapts DB_URL to the configured driver. For postgres behind a transaction-pooling
// proxy it asks lib/pq to send binary parameters so no named statement is prepared. For sqlite it
// strips a "sqlite://" scheme so plain file paths and "file:" URIs both work.
func normalizeDBURL(driver, raw string, disablePreparedBinaryResult bool) string {
	raw = strings.TrimSpace(raw)
	if driver == config.DBDriverSQLite {
		return strings.TrimPrefix(raw, "sqlite://")
	}
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get("binary_parameters") == "" {
		query.Set("binary_parameters", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

// dbNameFromURL reads the database name from a postgres URL or key=value DSN, or the file name
// of a sqlite DSN.
func dbNameFromURL(driver, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if driver == config.DBDriverSQLite {
		file := strings.TrimPrefix(strings.TrimPrefix(trimmed, "sqlite://"), "file:")
		file, _, _ = strings.Cut(file, "?")
		if file == "" || file == ":memory:" {
			return "memory"
		}
		return path.Base(file)
	}

	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}
