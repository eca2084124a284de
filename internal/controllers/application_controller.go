package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"loan_portal/internal/config"
	"loan_portal/internal/middleware"
	"loan_portal/internal/models"
	"loan_portal/internal/uploads"
)

// documentUpload pairs a KYC requirement with the file submitted for it.
type documentUpload struct {
	Requirement models.KycRequirement
	File        *multipart.FileHeader
}

// collectDocuments walks the loan type's requirements in order and picks up
// the file posted for each one. Requirements without a file are skipped,
// whether or not they are marked required.
func collectDocuments(form *multipart.Form, loan models.LoanType) []documentUpload {
	if form == nil {
		return nil
	}
	var docs []documentUpload
	for i, req := range loan.KycRequirements {
		files := form.File[uploads.FieldName(loan.ID, i+1)]
		if len(files) == 0 || files[0] == nil || files[0].Filename == "" {
			continue
		}
		docs = append(docs, documentUpload{Requirement: req, File: files[0]})
	}
	return docs
}

func loadBank(c *gin.Context, op string) (models.Bank, bool) {
	var bank models.Bank
	id, ok := paramID(c, "bankId", "Bank")
	if !ok {
		return bank, false
	}
	if err := config.DB.First(&bank, id).Error; err != nil {
		renderLookupError(c, err, "Bank", op)
		return bank, false
	}
	return bank, true
}

// ShowApplicationForm lists the bank's loan products with their KYC documents.
func ShowApplicationForm(c *gin.Context) {
	bank, ok := loadBank(c, "ShowApplicationForm: load bank")
	if !ok {
		return
	}

	var loanTypes []models.LoanType
	if err := config.DB.
		Where("bank_id = ?", bank.ID).
		Order("id").
		Preload("KycRequirements", orderByID).
		Find(&loanTypes).Error; err != nil {
		renderInternalError(c, err, "ShowApplicationForm: list loan types")
		return
	}

	render(c, http.StatusOK, "loan_form.html", gin.H{
		"Bank":      bank,
		"LoanTypes": loanTypes,
	})
}

// SubmitApplication stores an application, then its uploaded documents.
// The two writes are independent: if the documents fail, the application stays.
func SubmitApplication(c *gin.Context) {
	bank, ok := loadBank(c, "SubmitApplication: load bank")
	if !ok {
		return
	}

	var form applicationForm
	if err := c.ShouldBind(&form); err != nil {
		renderInputError(c, err)
		return
	}
	input, err := form.parse()
	if err != nil {
		renderInputError(c, err)
		return
	}

	var loan models.LoanType
	if err := config.DB.Preload("KycRequirements", orderByID).First(&loan, input.LoanTypeID).Error; err != nil {
		renderLookupError(c, err, "Loan type", "SubmitApplication: load loan type")
		return
	}

	multipartForm, err := c.MultipartForm()
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		renderInputError(c, err)
		return
	}
	pairs := collectDocuments(multipartForm, loan)

	application := models.Application{
		BankID:          bank.ID,
		LoanTypeID:      &loan.ID,
		ApplicantName:   input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		AccountNumber:   input.AccountNumber,
		AmountRequested: input.AmountRequested,
	}
	if err := config.DB.Create(&application).Error; err != nil {
		renderInternalError(c, err, "SubmitApplication: create application")
		return
	}
	log := middleware.RequestLogger(c).WithField("application_id", application.ID)

	docs := make([]models.KycDocumentUpload, 0, len(pairs))
	for _, p := range pairs {
		path := uploads.Destination(config.AppConfig.UploadDir, p.File.Filename)
		if err := c.SaveUploadedFile(p.File, path); err != nil {
			renderInternalError(c, err, "SubmitApplication: save document file")
			return
		}
		docs = append(docs, models.KycDocumentUpload{
			ApplicationID: application.ID,
			DocumentName:  p.Requirement.DocumentName,
			FilePath:      path,
		})
	}
	if len(docs) > 0 {
		if err := config.DB.Create(&docs).Error; err != nil {
			renderInternalError(c, err, "SubmitApplication: create document rows")
			return
		}
	}
	log.WithField("documents", len(docs)).Info("loan application submitted")

	middleware.Flash(c, "Loan application submitted successfully.")
	c.Redirect(http.StatusFound, c.Request.URL.Path)
}
