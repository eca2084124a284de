package models

import "time"

// KycDocumentUpload records one file stored for an application.
// Several rows may point at the same path when applicants reuse a filename.
type KycDocumentUpload struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ApplicationID uint   `gorm:"not null;index" json:"application_id"`
	DocumentName  string `gorm:"size:100" json:"document_name"`
	FilePath      string `gorm:"size:300" json:"file_path"`
}
