package sqlstore

import (
	"bufio"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed migrations
var migrationsFS embed.FS

const schemaUpFile = "000001_init.up.sql"

// Migrations returns the migration files of driver, rooted at the directory holding them.
func Migrations(driver Driver) (fs.FS, error) {
	if _, err := dialectFor(driver); err != nil {
		return nil, err
	}
	sub, err := fs.Sub(migrationsFS, "migrations/"+string(driver))
	if err != nil {
		return nil, fmt.Errorf("open %s migrations: %w", driver, err)
	}
	return sub, nil
}

// EnsureSchema creates every table and constraint that is missing, in one transaction.
// It is safe to call on every start; existing tables and rows are left alone.
func (s *Store) EnsureSchema(ctx context.Context) error {
	migrations, err := Migrations(s.dialect.driver)
	if err != nil {
		return err
	}
	raw, err := fs.ReadFile(migrations, schemaUpFile)
	if err != nil {
		return fmt.Errorf("read schema file: %w", err)
	}
	statements := splitStatements(string(raw))

	err = s.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("exec schema statement %q: %w", firstLine(stmt), err)
			}
		}
		return nil
	})
	if err != nil {
		return s.translate(err, "ensure schema", errorHints{})
	}

	s.logger.Info("schema ensured", "driver", string(s.dialect.driver), "statements", len(statements))
	return nil
}

// splitStatements cuts a schema file on ";" after dropping "--" comment lines.
// The schema files hold no procedural bodies, so a plain split is exact.
func splitStatements(raw string) []string {
	var cleaned strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		cleaned.WriteString(line)
		cleaned.WriteByte('\n')
	}

	parts := strings.Split(cleaned.String(), ";")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func firstLine(stmt string) string {
	if idx := strings.IndexByte(stmt, '\n'); idx >= 0 {
		return strings.TrimSpace(stmt[:idx])
	}
	return stmt
}
