package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/marromlanches/storefront-backend/internal/admins"
	"github.com/marromlanches/storefront-backend/pkg/config"
	"github.com/marromlanches/storefront-backend/pkg/db"
	"github.com/marromlanches/storefront-backend/pkg/db/models"
	"github.com/marromlanches/storefront-backend/pkg/logger"
	"github.com/marromlanches/storefront-backend/pkg/security"
)

// admin-seed creates a back-office operator account. There is no public
// registration endpoint, so the first admin has to come from here.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "admin-seed"})

	_ = godotenv.Load()

	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "", "display name (optional)")
	flag.Parse()

	if strings.TrimSpace(*email) == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: admin-seed -email <email> -password <password> [-name <name>]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "admin-seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer dbClient.Close()

	hash, err := security.HashPassword(*password, cfg.Password)
	requireResource(ctx, logg, "password hash", err)

	admin := &models.AdminUser{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(*email)),
		PasswordHash: hash,
	}
	if trimmed := strings.TrimSpace(*name); trimmed != "" {
		admin.DisplayName = &trimmed
	}

	created, err := admins.NewRepository(dbClient.DB()).Create(ctx, admin)
	requireResource(ctx, logg, "admin account", err)

	fmt.Println("created admin:", created.Email, created.ID)
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
