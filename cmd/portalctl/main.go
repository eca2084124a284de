// Command portalctl prepares the portal database and manages staff accounts.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"loan_portal/internal/config"
	"loan_portal/internal/logger"
	"loan_portal/internal/models"
	"loan_portal/internal/seed"
	"loan_portal/internal/uploads"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var db *gorm.DB

	root := &cobra.Command{
		Use:          "portalctl",
		Short:        "Administer the loan & KYC portal database",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			logger.Setup(cfg.LogFile, cfg.LogLevel)

			var err error
			db, err = config.OpenDB(cfg)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			return config.Migrate(db)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}

	root.AddCommand(
		newInitDBCmd(),
		newSeedCmd(&db),
		newCreateAdminCmd(&db),
	)
	return root
}

func newInitDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create or upgrade the schema and the upload directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := uploads.EnsureDir(config.AppConfig.UploadDir); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database initialized.")
			return nil
		},
	}
}

func newSeedCmd(db **gorm.DB) *cobra.Command {
	var opts seed.Options

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the default bank and superadmin",
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := seed.DefaultOptions(config.AppConfig)
			if opts.BankName == "" {
				opts.BankName = defaults.BankName
			}
			if opts.AdminEmail == "" {
				opts.AdminEmail = defaults.AdminEmail
			}
			if opts.AdminPassword == "" {
				opts.AdminPassword = defaults.AdminPassword
			}

			res, err := seed.Run(*db, opts)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"bank_id":       res.Bank.ID,
				"bank_created":  res.BankCreated,
				"admin_id":      res.Admin.ID,
				"admin_created": res.AdminCreated,
			}).Info("seed finished")
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded SuperAdmin %s and bank %q (id %d).\n",
				res.Admin.Email, res.Bank.Name, res.Bank.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.BankName, "bank-name", "", "default bank name (SEED_BANK_NAME)")
	cmd.Flags().StringVar(&opts.BankAddress, "bank-address", "Mumbai", "default bank address")
	cmd.Flags().StringVar(&opts.BankLogo, "bank-logo", "", "default bank logo URL")
	cmd.Flags().StringVar(&opts.BankThemeColor, "bank-theme-color", "#003366", "default bank theme color")
	cmd.Flags().StringVar(&opts.AdminEmail, "admin-email", "", "superadmin email (SEED_ADMIN_EMAIL)")
	cmd.Flags().StringVar(&opts.AdminPassword, "admin-password", "", "superadmin password (SEED_ADMIN_PASSWORD)")
	return cmd
}

func newCreateAdminCmd(db **gorm.DB) *cobra.Command {
	var (
		email, password, role string
		bankID                uint
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a staff account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if role != models.RoleAdmin && role != models.RoleSuperAdmin {
				return fmt.Errorf("unknown role %q", role)
			}
			var bank *uint
			if bankID != 0 {
				var b models.Bank
				if err := (*db).First(&b, bankID).Error; err != nil {
					return fmt.Errorf("bank %d: %w", bankID, err)
				}
				bank = &bankID
			}

			user, err := seed.CreateUser(*db, email, password, role, bank)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s (id %d).\n", user.Role, user.Email, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "login password")
	cmd.Flags().StringVar(&role, "role", models.RoleAdmin, "admin or superadmin")
	cmd.Flags().UintVar(&bankID, "bank-id", 0, "bank the account belongs to (0 for none)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
