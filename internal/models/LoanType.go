package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanType is a loan product offered by a bank. Min/max bounds are
// informational; nothing checks MinAmount <= MaxAmount.
type LoanType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	BankID       uint            `gorm:"not null;index" json:"bank_id"`
	Name         string          `gorm:"size:100" json:"name"`
	TermMonths   int             `json:"term_months"`
	MinAmount    decimal.Decimal `gorm:"type:numeric" json:"min_amount"`
	MaxAmount    decimal.Decimal `gorm:"type:numeric" json:"max_amount"`
	InterestRate decimal.Decimal `gorm:"type:numeric" json:"interest_rate"`

	// Ordered by ID when preloaded; the position drives the upload field names.
	KycRequirements []KycRequirement `gorm:"foreignKey:LoanTypeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"kyc_requirements,omitempty"`
}
