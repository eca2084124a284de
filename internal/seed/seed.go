// Package seed bootstraps a fresh database with a default bank and staff accounts.
package seed

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"loan_portal/internal/config"
	"loan_portal/internal/models"
)

// ErrUserExists is returned when the email is already registered.
var ErrUserExists = errors.New("user already exists")

// Options describes the default tenant and superadmin.
type Options struct {
	BankName       string
	BankAddress    string
	BankLogo       string
	BankThemeColor string

	AdminEmail    string
	AdminPassword string
}

// DefaultOptions returns the demo bank and the superadmin credentials from cfg.
func DefaultOptions(cfg *config.Config) Options {
	return Options{
		BankName:       cfg.SeedBankName,
		BankAddress:    "Mumbai",
		BankThemeColor: "#003366",
		AdminEmail:     cfg.SeedAdminEmail,
		AdminPassword:  cfg.SeedAdminPass,
	}
}

// Result reports what Run found or created.
type Result struct {
	Bank         models.Bank
	Admin        models.User
	BankCreated  bool
	AdminCreated bool
}

// Run inserts the default bank and a superadmin that belongs to no bank.
// Rows that already exist are left untouched, so Run can be repeated.
func Run(db *gorm.DB, opts Options) (Result, error) {
	var res Result

	err := db.Where("name = ?", opts.BankName).First(&res.Bank).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		res.Bank = models.Bank{
			Name:       opts.BankName,
			Address:    opts.BankAddress,
			Logo:       opts.BankLogo,
			ThemeColor: opts.BankThemeColor,
		}
		if err := db.Create(&res.Bank).Error; err != nil {
			return res, fmt.Errorf("seed bank: %w", err)
		}
		res.BankCreated = true
	case err != nil:
		return res, fmt.Errorf("seed bank: %w", err)
	}

	admin, err := CreateUser(db, opts.AdminEmail, opts.AdminPassword, models.RoleSuperAdmin, nil)
	switch {
	case err == nil:
		res.Admin = admin
		res.AdminCreated = true
	case errors.Is(err, ErrUserExists):
		if err := db.Where("email = ?", opts.AdminEmail).First(&res.Admin).Error; err != nil {
			return res, fmt.Errorf("seed admin: %w", err)
		}
	default:
		return res, fmt.Errorf("seed admin: %w", err)
	}
	return res, nil
}

// CreateUser stores a staff account with a hashed password.
func CreateUser(db *gorm.DB, email, password, role string, bankID *uint) (models.User, error) {
	user := models.User{Email: email, Role: role, BankID: bankID}
	if err := user.SetPassword(password); err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	if err := db.Create(&user).Error; err != nil {
		if config.IsUniqueViolation(err) {
			return models.User{}, fmt.Errorf("%w: %s", ErrUserExists, email)
		}
		return models.User{}, err
	}
	return user, nil
}
