package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/joho/godotenv"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/infrastructure/repository/sqlstore"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/logging"
)

var logger = logging.NewJSON(logging.LevelInfo).Named("migration")

func main() {
	defer func() { _ = logger.Sync() }()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fatal("load .env", err)
	}

	driver := sqlstore.Driver(strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER"))))
	if driver == "" {
		driver = sqlstore.DriverPostgres
	}
	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		fatal("DB_URL is required", nil)
	}
	dbURL = migrateURL(driver, dbURL)

	migrations, err := sqlstore.Migrations(driver)
	if err != nil {
		fatal("open migrations", err)
	}
	source, err := iofs.New(migrations, ".")
	if err != nil {
		fatal("create migration source", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, dbURL)
	if err != nil {
		fatal("create migrator", err)
	}
	defer closeMigrator(m)

	cmd := strings.ToLower(strings.TrimSpace(os.Args[1]))
	switch cmd {
	case "up":
		handleMigrationErr(m.Up())
		logger.Info("migrations applied", "driver", string(driver))
	case "down":
		steps, parseErr := parseSteps(os.Args[2:])
		if parseErr != nil {
			fatal("parse steps", parseErr)
		}
		handleMigrationErr(m.Steps(-steps))
		logger.Info("migrations rolled back", "steps", steps)
	case "version":
		version, dirty, versionErr := m.Version()
		if errors.Is(versionErr, migrate.ErrNilVersion) {
			fmt.Println("version: none")
			fmt.Println("dirty: false")
			return
		}
		if versionErr != nil {
			fatal("read version", versionErr)
		}
		fmt.Printf("version: %d\n", version)
		fmt.Printf("dirty: %t\n", dirty)
	case "force":
		if len(os.Args) < 3 {
			fatal("force requires a version argument", nil)
		}
		version, parseErr := parseVersion(os.Args[2])
		if parseErr != nil {
			fatal("parse version", parseErr)
		}
		if err := m.Force(version); err != nil {
			fatal(fmt.Sprintf("force version %d", version), err)
		}
		logger.Info("forced version", "version", version)
	case "goto", "migrate":
		if len(os.Args) < 3 {
			fatal("goto requires a target version argument", nil)
		}
		target, parseErr := parseTarget(os.Args[2])
		if parseErr != nil {
			fatal("parse target", parseErr)
		}
		handleMigrationErr(m.Migrate(target))
		logger.Info("migrated", "version", target)
	default:
		printUsage()
		os.Exit(2)
	}
}

// migrateURL turns a DB_URL into the form golang-migrate's drivers expect.
func migrateURL(driver sqlstore.Driver, raw string) string {
	if driver != sqlstore.DriverSQLite {
		return raw
	}
	path := strings.TrimPrefix(raw, "sqlite://")
	path = strings.TrimPrefix(path, "file:")
	return "sqlite://" + path
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}

	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", args[0], err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}

	return steps, nil
}

func parseVersion(raw string) (int, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("version must be >= 0")
	}
	if value > int64(^uint(0)>>1) {
		return 0, fmt.Errorf("version is too large for this platform")
	}

	return int(value), nil
}

func parseTarget(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q: %w", raw, err)
	}
	return uint(value), nil
}

func handleMigrationErr(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return
	}
	fatal("run migration", err)
}

func closeMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db", "error", dbErr)
	}
}

func fatal(msg string, err error) {
	if err != nil {
		logger.Error(msg, "error", err)
	} else {
		logger.Error(msg)
	}
	_ = logger.Sync()
	os.Exit(1)
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <up|down|version|force|goto> [args]\n", name)
	fmt.Fprintln(os.Stderr, "environment: DB_DRIVER (postgres|sqlite), DB_URL")
	fmt.Fprintln(os.Stderr, "examples:")
	fmt.Fprintf(os.Stderr, "  %s up\n", name)
	fmt.Fprintf(os.Stderr, "  %s down 1\n", name)
	fmt.Fprintf(os.Stderr, "  %s version\n", name)
	fmt.Fprintf(os.Stderr, "  %s force 1\n", name)
	fmt.Fprintf(os.Stderr, "  %s goto 1\n", name)
}
