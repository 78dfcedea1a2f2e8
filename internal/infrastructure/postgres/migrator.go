package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
)

// Migrator applies the schema migrations of a directory to the primary.
// Replicas follow through streaming replication.
type Migrator struct {
	m      *migrate.Migrate
	logger zerolog.Logger
}

// NewMigrator opens the migrations under dir against databaseURL.
func NewMigrator(databaseURL, dir string, logger zerolog.Logger) (*Migrator, error) {
	m, err := migrate.New("file://"+dir, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open migrations %s: %w", dir, err)
	}
	m.Log = migrateLogger{logger: logger}

	return &Migrator{m: m, logger: logger}, nil
}

// Close releases the source and database handles.
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

// Up applies every pending migration and returns the resulting version.
func (mg *Migrator) Up() (uint, error) {
	from, _, err := mg.Version()
	if err != nil {
		return 0, err
	}

	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return from, fmt.Errorf("migrate up from version %d: %w", from, err)
	}

	to, _, err := mg.Version()
	if err != nil {
		return 0, err
	}
	mg.logger.Info().Uint("from", from).Uint("to", to).Bool("changed", from != to).Msg("schema migrated up")
	return to, nil
}

// Down rolls back the newest applied migration and returns the resulting
// version. Zero means the schema is empty.
func (mg *Migrator) Down() (uint, error) {
	from, _, err := mg.Version()
	if err != nil {
		return 0, err
	}
	if from == 0 {
		return 0, fmt.Errorf("migrate down: %w", migrate.ErrNilVersion)
	}

	if err := mg.m.Steps(-1); err != nil {
		return from, fmt.Errorf("migrate down from version %d: %w", from, err)
	}

	to, _, err := mg.Version()
	if err != nil {
		return 0, err
	}
	mg.logger.Info().Uint("from", from).Uint("to", to).Msg("schema rolled back")
	return to, nil
}

// Version returns the applied schema version. A schema with no migrations
// is version zero. dirty reports a migration that failed half way.
func (mg *Migrator) Version() (version uint, dirty bool, err error) {
	version, dirty, err = mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return version, true, fmt.Errorf("schema version %d is dirty", version)
	}
	return version, false, nil
}

// migrateLogger routes migrate's progress lines to zerolog at debug level.
type migrateLogger struct {
	logger zerolog.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.logger.Debug().Str("component", "migrate").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l migrateLogger) Verbose() bool {
	return l.logger.GetLevel() <= zerolog.DebugLevel
}
