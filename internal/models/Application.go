package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Application is a loan request submitted by an applicant.
// Scalar fields are stored exactly as submitted; money columns are
// unbounded numeric so no scale or precision is imposed.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	BankID uint `gorm:"not null;index" json:"bank_id"`
	// Nil once the loan type has been deleted.
	LoanTypeID *uint     `gorm:"index" json:"loan_type_id"`
	LoanType   *LoanType `gorm:"foreignKey:LoanTypeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"loan_type,omitempty"`

	ApplicantName   string          `gorm:"size:100" json:"applicant_name"`
	Email           string          `gorm:"size:120" json:"email"`
	Phone           string          `gorm:"size:20" json:"phone"`
	AccountNumber   *string         `gorm:"size:30" json:"account_number"`
	AmountRequested decimal.Decimal `gorm:"type:numeric" json:"amount_requested"`

	Documents []KycDocumentUpload `gorm:"foreignKey:ApplicationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"documents,omitempty"`
}
