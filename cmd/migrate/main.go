package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bojietech/storefront/internal/domain/identity"
	"github.com/bojietech/storefront/internal/infrastructure/config"
	"github.com/bojietech/storefront/internal/infrastructure/logger"
	"github.com/bojietech/storefront/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var (
		logLevel      string
		skipSeed      bool
		adminUsername string
	)

	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&skipSeed, "skip-seed", false, "Only migrate the schema, do not seed data")
	flag.StringVar(&adminUsername, "admin-username", "admin", "Username for the initial admin account")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(logLevel))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	log.Info("Running schema migration")
	if err := persistence.AutoMigrate(db.DB); err != nil {
		log.Fatal("Schema migration failed", zap.Error(err))
	}
	log.Info("Schema migration complete")

	if skipSeed {
		return
	}

	ctx := context.Background()
	if err := seedAdminUser(ctx, db, adminUsername, log); err != nil {
		log.Fatal("Admin seed failed", zap.Error(err))
	}
	if err := seedSettings(ctx, db); err != nil {
		log.Fatal("Settings seed failed", zap.Error(err))
	}
	log.Info("Seed complete")
}

// seedAdminUser creates the first admin account on an empty user table.
// The password comes from STOREFRONT_ADMIN_PASSWORD so it never lands
// in shell history or the config file.
func seedAdminUser(ctx context.Context, db *persistence.Database, username string, log *zap.Logger) error {
	userRepo := persistence.NewGormUserRepository(db.DB)

	count, err := userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		log.Info("Users already exist, skipping admin seed", zap.Int64("count", count))
		return nil
	}

	password := os.Getenv("STOREFRONT_ADMIN_PASSWORD")
	if password == "" {
		return fmt.Errorf("STOREFRONT_ADMIN_PASSWORD must be set to seed the admin account")
	}

	admin, err := identity.NewUser(username, password, identity.RoleAdmin)
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	if err := userRepo.Save(ctx, admin); err != nil {
		return fmt.Errorf("save admin: %w", err)
	}

	log.Info("Admin account created", zap.String("username", username))
	return nil
}

// seedSettings warms the singleton company profile row
func seedSettings(ctx context.Context, db *persistence.Database) error {
	if _, err := persistence.NewGormSettingsRepository(db.DB).Get(ctx); err != nil {
		return fmt.Errorf("initialize settings: %w", err)
	}
	return nil
}
