package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/cy-rus404/sms-backend/internal/app/models"
	appRepos "github.com/cy-rus404/sms-backend/internal/app/repositories"
	"github.com/cy-rus404/sms-backend/internal/config"
	"github.com/cy-rus404/sms-backend/internal/pkg/auth"
)

// CreateDefaultData seeds the default admin account when no admin exists yet,
// so a fresh deployment can always be logged into.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.AdminExists(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for existing admin account")
		return err
	}
	if exists {
		lgr.Debug().Msg("Admin account already present, skipping seed")
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &appModels.User{
		Username: cfg.Admin.Username,
		Password: hashed,
		Role:     appModels.RoleAdmin,
		Name:     "Administrator",
		Email:    cfg.Admin.Email,
	}

	id, err := userRepo.CreateUser(ctx, admin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Int64("userID", id).Str("username", admin.Username).Msg("Default admin account created")
	return nil
}
