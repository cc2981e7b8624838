package sqlstore

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// violation is the driver-neutral class of a failed statement.
type violation int

const (
	violationNone violation = iota
	violationIDCollision
	violationUnique
	violationForeignKey
	violationCheck
	violationUnavailable
)

type dialect struct {
	driver     Driver
	driverName string
	dbSystem   string
	// classify reports the violation class of err and, when known, the constraint name.
	classify      func(err error) (violation, string)
	prepareDSN    func(dsn string) string
	configurePool func(db *sqlx.DB, opts Options)
}

var postgresDialect = dialect{
	driver:     DriverPostgres,
	driverName: "postgres",
	dbSystem:   "postgresql",
	classify:   classifyPostgres,
	prepareDSN: strings.TrimSpace,
	configurePool: func(db *sqlx.DB, opts Options) {
		if opts.MaxOpenConns > 0 {
			db.SetMaxOpenConns(opts.MaxOpenConns)
		}
		if opts.MaxIdleConns >= 0 {
			db.SetMaxIdleConns(opts.MaxIdleConns)
		}
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	},
}

var sqliteDialect = dialect{
	driver:     DriverSQLite,
	driverName: "sqlite",
	dbSystem:   "sqlite",
	classify:   classifySQLite,
	prepareDSN: prepareSQLiteDSN,
	configurePool: func(db *sqlx.DB, _ Options) {
		// One writer at a time; transactions hold the only connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	},
}

func dialectFor(d Driver) (dialect, error) {
	switch d {
	case DriverPostgres:
		return postgresDialect, nil
	case DriverSQLite:
		return sqliteDialect, nil
	default:
		return dialect{}, fmt.Errorf("unsupported db driver %q", d)
	}
}

var sqlitePragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
}

// prepareSQLiteDSN strips a sqlite:// scheme and turns on foreign keys, a busy timeout and
// sqlite's own time layout unless the DSN already sets them.
func prepareSQLiteDSN(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	dsn = strings.TrimPrefix(dsn, "sqlite://")
	dsn = strings.TrimPrefix(dsn, "sqlite:")

	path, rawQuery, _ := strings.Cut(dsn, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return dsn
	}
	existing := strings.Join(query["_pragma"], ",")
	for _, pragma := range sqlitePragmas {
		name, _, _ := strings.Cut(pragma, "(")
		if !strings.Contains(existing, name) {
			query.Add("_pragma", pragma)
		}
	}
	if query.Get("_time_format") == "" {
		query.Set("_time_format", "sqlite")
	}

	return path + "?" + query.Encode()
}

func classifyPostgres(err error) (violation, string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			if strings.HasSuffix(pqErr.Constraint, "_pkey") {
				return violationIDCollision, pqErr.Constraint
			}
			return violationUnique, pqErr.Constraint
		case "23503":
			return violationForeignKey, pqErr.Constraint
		case "23514":
			return violationCheck, pqErr.Constraint
		case "57P01", "57P03", "53300":
			return violationUnavailable, ""
		}
		if pqErr.Code.Class() == "08" {
			return violationUnavailable, ""
		}
		return violationNone, ""
	}
	return classifyTransport(err)
}

func classifySQLite(err error) (violation, string) {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return violationIDCollision, ""
		case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return violationUnique, sqliteConstraintName(sqliteErr.Error())
		case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY:
			return violationForeignKey, ""
		case sqlite3lib.SQLITE_CONSTRAINT_CHECK:
			return violationCheck, sqliteConstraintName(sqliteErr.Error())
		}
		switch sqliteErr.Code() & 0xff {
		case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED, sqlite3lib.SQLITE_CANTOPEN,
			sqlite3lib.SQLITE_IOERR, sqlite3lib.SQLITE_NOTADB:
			return violationUnavailable, ""
		}
		return violationNone, ""
	}
	return classifyTransport(err)
}

// sqliteConstraintName pulls the name out of messages like
// "constraint failed: CHECK constraint failed: check_different_teams (275)".
func sqliteConstraintName(msg string) string {
	idx := strings.LastIndex(msg, "failed: ")
	if idx < 0 {
		return ""
	}
	name := msg[idx+len("failed: "):]
	if cut := strings.Index(name, " ("); cut >= 0 {
		name = name[:cut]
	}
	return strings.TrimSpace(name)
}

func classifyTransport(err error) (violation, string) {
	if errors.Is(err, driver.ErrBadConn) {
		return violationUnavailable, ""
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return violationUnavailable, ""
	}
	return violationNone, ""
}
