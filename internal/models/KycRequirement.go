package models

import "time"

// KycRequirement names a document applicants are asked to upload for a loan type.
// Required is displayed to applicants but never enforced on submission.
type KycRequirement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	LoanTypeID   uint   `gorm:"not null;index" json:"loan_type_id"`
	DocumentName string `gorm:"size:100" json:"document_name"`
	Required     bool   `json:"required"`
}
