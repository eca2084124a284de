package models

import "time"

// Bank is a tenant: it owns loan products and receives applications.
type Bank struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name       string `gorm:"size:100" json:"name"`
	Address    string `gorm:"size:200" json:"address"`
	Logo       string `gorm:"size:200" json:"logo"`
	ThemeColor string `gorm:"size:20" json:"theme_color"`

	LoanTypes []LoanType `gorm:"foreignKey:BankID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"loan_types,omitempty"`
}
