package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"superheroes/internal/core/auth"
	"superheroes/internal/core/config"
	"superheroes/internal/core/database"
	"superheroes/internal/core/logger"
	"superheroes/internal/repo"
	"superheroes/pkg/utils"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the heroes table and its indexes",
		Args:  cobra.NoArgs,
		RunE:  runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log, cleanup := logger.New(logger.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:   cfg.DB.Driver,
		DSN:      cfg.DB.DSN,
		Username: cfg.DB.Username,
		Password: cfg.DB.Password,
		LogLevel: cfg.DB.LogLevel,
		Logger:   log,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := repo.NewHeroRepo(db).Migrate(cmd.Context()); err != nil {
		return err
	}
	log.Info("migration done", zap.String("driver", cfg.DB.Driver))
	return nil
}

func newHashPasswordCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Print a bcrypt hash for auth.admin_password_hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := utils.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "plain text password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

var errBadPassword = errors.New("password does not match auth.admin_password_hash")

func newTokenCmd() *cobra.Command {
	var password, subject string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an admin JWT for the write endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cfg.Auth.AdminPasswordHash == "" {
				return errors.New("auth.admin_password_hash is not configured")
			}
			if !utils.CheckPassword(password, cfg.Auth.AdminPasswordHash) {
				return errBadPassword
			}
			tok, err := auth.NewJWTer(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TTL()).Issue(subject, auth.RoleAdmin)
			if err != nil {
				return fmt.Errorf("issuing token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "admin password")
	cmd.Flags().StringVarP(&subject, "subject", "s", "admin", "token subject")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
