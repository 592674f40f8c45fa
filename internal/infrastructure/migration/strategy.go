package migration

import (
	"context"
	"embed"
	"fmt"
	"path"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"privstore/internal/infrastructure/persistence/models"
	"privstore/internal/shared/config"
	"privstore/internal/shared/logger"
)

//go:embed scripts/*/*.sql
var scriptsFS embed.FS

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate brings the schema up to date
	Migrate(ctx context.Context, db *gorm.DB) error
	// Name returns the strategy name
	Name() string
}

// NewStrategy picks versioned goose scripts for MySQL and PostgreSQL and
// GORM auto-migration for SQLite.
func NewStrategy(driver string, log logger.Interface) (Strategy, error) {
	switch driver {
	case config.DriverMySQL, config.DriverPostgres:
		return NewGooseStrategy(driver, log), nil
	case config.DriverSQLite:
		return NewGormAutoMigrateStrategy(log), nil
	default:
		return nil, fmt.Errorf("no migration strategy for driver %q", driver)
	}
}

// GooseStrategy applies the embedded SQL scripts for one dialect.
type GooseStrategy struct {
	dialect string
	logger  logger.Interface
}

func NewGooseStrategy(dialect string, log logger.Interface) *GooseStrategy {
	return &GooseStrategy{
		dialect: dialect,
		logger:  log.With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) Name() string {
	return "goose"
}

// ScriptsDir is where `migrate create` writes new scripts for this dialect,
// relative to the repository root.
func (s *GooseStrategy) ScriptsDir() string {
	return path.Join("internal/infrastructure/migration/scripts", s.dialect)
}

func (s *GooseStrategy) setup() error {
	goose.SetBaseFS(scriptsFS)
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

func (s *GooseStrategy) dir() string {
	return path.Join("scripts", s.dialect)
}

func (s *GooseStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	if err := s.setup(); err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	before, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, s.dir()); err != nil {
		s.logger.Errorw("goose up failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	after, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	s.logger.Infow("migrations applied", "dialect", s.dialect, "from_version", before, "to_version", after)
	return nil
}

// MigrateDown rolls back the given number of versions.
func (s *GooseStrategy) MigrateDown(ctx context.Context, db *gorm.DB, steps int) error {
	if err := s.setup(); err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	for i := 0; i < steps; i++ {
		if err := goose.DownContext(ctx, sqlDB, s.dir()); err != nil {
			return fmt.Errorf("failed to roll back migration %d of %d: %w", i+1, steps, err)
		}
	}
	return nil
}

// Reset rolls back every applied version.
func (s *GooseStrategy) Reset(ctx context.Context, db *gorm.DB) error {
	if err := s.setup(); err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return goose.ResetContext(ctx, sqlDB, s.dir())
}

// Status prints the applied and pending scripts.
func (s *GooseStrategy) Status(ctx context.Context, db *gorm.DB) error {
	if err := s.setup(); err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return goose.StatusContext(ctx, sqlDB, s.dir())
}

// Version returns the current schema version.
func (s *GooseStrategy) Version(ctx context.Context, db *gorm.DB) (int64, error) {
	if err := s.setup(); err != nil {
		return 0, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return goose.GetDBVersionContext(ctx, sqlDB)
}

// Create writes a new timestamped SQL script to ScriptsDir on disk.
func (s *GooseStrategy) Create(name string) error {
	goose.SetBaseFS(nil)
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.Create(nil, s.ScriptsDir(), name, "sql")
}

// GormAutoMigrateStrategy creates tables from the GORM models.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{logger: log.With("component", "migration.gorm")}
}

func (s *GormAutoMigrateStrategy) Name() string {
	return "gorm_auto_migrate"
}

func (s *GormAutoMigrateStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	all := models.All()
	if err := db.WithContext(ctx).AutoMigrate(all...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}
	s.logger.Infow("auto migration completed", "models", len(all))
	return nil
}
