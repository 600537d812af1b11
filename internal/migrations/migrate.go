package migrations

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	pg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

const migrationsTable = "scoreboard_schema_migrations"

// Run applies the file migrations under ./migrations. Databases created
// before the runner existed carry the schema but no tracking table; those are
// baselined to the latest migration version instead of being re-migrated.
func Run(databaseURL string) error {
	if databaseURL == "" {
		return fmt.Errorf("database URL is empty")
	}

	sqlDB, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer sqlDB.Close()

	driver, err := pg.WithInstance(sqlDB, &pg.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return fmt.Errorf("create migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	baselineIfNeeded(sqlDB, m)

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migrate up: %w", err)
	}

	log.Printf("[MIGRATE] schema up to date")
	return nil
}

// baselineIfNeeded force-sets the migration version when the schema exists
// (players table present) but the tracking table does not. Best effort: a
// failed baseline surfaces as an Up error with more context.
func baselineIfNeeded(sqlDB *sql.DB, m *migrate.Migrate) {
	var schemaExists bool
	row := sqlDB.QueryRow("SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name='players')")
	if err := row.Scan(&schemaExists); err != nil || !schemaExists {
		return
	}

	var tracked bool
	row = sqlDB.QueryRow("SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name=$1)", migrationsTable)
	if err := row.Scan(&tracked); err != nil || tracked {
		return
	}

	latest := latestMigrationVersion("migrations")
	if latest == 0 {
		return
	}
	log.Printf("[MIGRATE] baselining existing schema at version %d", latest)
	if err := m.Force(int(latest)); err != nil {
		log.Printf("[MIGRATE] baseline to version %d failed: %v", latest, err)
	}
}

// latestMigrationVersion returns the highest numeric version prefix
// (e.g. 000001_) among the migration files, or 0 when none parse.
func latestMigrationVersion(dir string) int64 {
	files, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	re := regexp.MustCompile(`^0*([0-9]+)_`)
	var max int64
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		m := re.FindStringSubmatch(f.Name())
		if len(m) < 2 {
			continue
		}
		if v, _ := strconv.ParseInt(m[1], 10, 64); v > max {
			max = v
		}
	}
	return max
}
