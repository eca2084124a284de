package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// User is a bank staff account. Role is stored as given; only
// RoleSuperAdmin changes behavior (the dashboard lists every bank).
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:128" json:"-"`
	Role         string `gorm:"size:20" json:"role"`

	BankID *uint `gorm:"index" json:"bank_id"`
	Bank   *Bank `gorm:"foreignKey:BankID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"bank,omitempty"`
}

// SetPassword stores a bcrypt hash of password.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// IsSuperAdmin reports whether the user sees every bank on the dashboard.
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}
