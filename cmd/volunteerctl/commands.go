package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/heartmarshall/volunteer-backend/internal/adapter/postgres"
	notificationrepo "github.com/heartmarshall/volunteer-backend/internal/adapter/postgres/notification"
	userrepo "github.com/heartmarshall/volunteer-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/volunteer-backend/internal/adapter/qrcode"
	"github.com/heartmarshall/volunteer-backend/internal/app"
	"github.com/heartmarshall/volunteer-backend/internal/auth"
	"github.com/heartmarshall/volunteer-backend/internal/config"
	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"github.com/heartmarshall/volunteer-backend/internal/service/notification"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
			return nil
		},
	}
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect service configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "env",
		Short: "List the environment variables the service reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := config.EnvReference()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	})

	return cmd
}

func migrateCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			applied, err := postgres.MigrateUp(cmd.Context(), cfg.Database.DSN)
			if err != nil {
				return err
			}
			c.logger.Info("migrations applied", zap.Int64s("versions", applied))
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", len(applied))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			v, err := postgres.MigrationVersion(cmd.Context(), cfg.Database.DSN)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", v)
			return nil
		},
	})

	return cmd
}

func reconcileHoursCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile-hours",
		Short: "Rebuild cumulative volunteer hours from the participation ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			pool, err := postgres.NewPool(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			corrected, err := userrepo.New(pool).RecomputeVolunteerHours(cmd.Context())
			if err != nil {
				return err
			}
			c.logger.Info("volunteer hours reconciled", zap.Int64("corrected", corrected))
			fmt.Fprintf(cmd.OutOrStdout(), "corrected %d user total(s)\n", corrected)
			return nil
		},
	}
}

func issueTokenCmd(c *cli) *cobra.Command {
	var (
		userID string
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "issue-token",
		Short: "Mint an access token for a user, for testing and support",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("--user-id: %w", err)
			}
			if !domain.UserRole(role).IsValid() {
				return fmt.Errorf("--role: unknown role %q", role)
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = cfg.Auth.AccessTokenTTL
			}

			token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl).GenerateAccessToken(id, domain.UserRole(role))
			if err != nil {
				return err
			}
			c.logger.Debug("access token issued", zap.String("user_id", id.String()), zap.Duration("ttl", ttl))
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "User ID (UUID)")
	cmd.Flags().StringVar(&role, "role", string(domain.UserRoleVolunteer), "Role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (defaults to the configured access token TTL)")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func scanTokenCmd(c *cli) *cobra.Command {
	var (
		action string
		out    string
		size   int
	)

	cmd := &cobra.Command{
		Use:   "scan-token <offering_id>",
		Short: "Render an attendance QR code for printing",
		Long: `Render an attendance QR code for an offering without going through the API.
The raw token is printed to stdout; with --out the PNG is written to a file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offeringID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || offeringID <= 0 {
				return fmt.Errorf("offering_id must be a positive integer")
			}
			scanAction := domain.ScanAction(action)
			if !scanAction.IsValid() {
				return fmt.Errorf("--action must be signIn or signOut")
			}

			token := domain.EncodeScanToken(offeringID, scanAction, time.Now())
			fmt.Fprintln(cmd.OutOrStdout(), token)

			if out == "" {
				return nil
			}
			png, err := qrcode.NewRenderer(size).PNG(token)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			c.logger.Info("scan token rendered",
				zap.Int64("offering_id", offeringID),
				zap.String("action", action),
				zap.String("file", out))
			return nil
		},
	}

	cmd.Flags().StringVar(&action, "action", string(domain.ScanActionSignIn), "signIn or signOut")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the PNG to this file")
	cmd.Flags().IntVar(&size, "size", qrcode.DefaultSize, "Image size in pixels")

	return cmd
}

func setRoleCmd(c *cli) *cobra.Command {
	var (
		email string
		role  string
	)

	cmd := &cobra.Command{
		Use:   "set-role",
		Short: "Assign a role to a user by email, e.g. to bootstrap the first admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := domain.UserRole(role)
			if !target.IsValid() {
				return fmt.Errorf("--role: unknown role %q", role)
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			pool, err := postgres.NewPool(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			u, err := userrepo.New(pool).UpdateRoleByEmail(cmd.Context(), email, target)
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("no user with email %q", email)
			}
			if err != nil {
				return err
			}

			c.logger.Info("role assigned", zap.String("user_id", u.ID.String()), zap.String("role", string(u.Role)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) is now %s\n", u.Email, u.ID, u.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email of the user")
	cmd.Flags().StringVar(&role, "role", string(domain.UserRoleAdmin), "volunteer, organizer or admin")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func purgeNotificationsCmd(c *cli) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "purge-notifications",
		Short: "Delete notifications read longer ago than the retention period",
		Long: `Delete read notifications older than the retention period.
Meant to run from an external scheduler; unread notifications are never touched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("retention-days") && days < 1 {
				return fmt.Errorf("--retention-days must be at least 1")
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if days > 0 {
				cfg.Retention.NotificationRetentionDays = days
			}
			retention := cfg.Retention.NotificationRetention()

			pool, err := postgres.NewPool(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			started := time.Now()
			svc := notification.NewService(app.NewLogger(cfg.Log), notificationrepo.New(pool))
			deleted, err := svc.PurgeRead(cmd.Context(), retention)
			if err != nil {
				return err
			}

			c.logger.Info("notification purge completed",
				zap.Int64("deleted", deleted),
				zap.Duration("retention", retention),
				zap.Duration("took", time.Since(started)))
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d notification(s)\n", deleted)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "retention-days", 0, "Override the configured retention, in days")

	return cmd
}
