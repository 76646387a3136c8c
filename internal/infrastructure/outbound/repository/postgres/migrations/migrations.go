package migrations

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	ports "blog-service/internal/domain/ports/output"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var files embed.FS

// Up applies every pending migration. The url must use the pgx5:// scheme.
func Up(url string, log ports.Logger) error {
	source, err := iofs.New(files, ".")
	if err != nil {
		return fmt.Errorf("failed to open migrations source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, url)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Warn("Failed to close migrations source", slog.String("error", srcErr.Error()))
		}
		if dbErr != nil {
			log.Warn("Failed to close migrations database", slog.String("error", dbErr.Error()))
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Database schema is up to date")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	log.Info("Applied migrations", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	return nil
}
