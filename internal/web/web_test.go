package web

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan_portal/internal/models"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"loan_form.html", "admin_login.html", "admin_dashboard.html", "error.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestLoanFormNamesUploadFields(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	loan := models.LoanType{
		ID:        5,
		Name:      "Personal",
		MinAmount: decimal.NewFromInt(1000),
		MaxAmount: decimal.NewFromInt(50000),
		KycRequirements: []models.KycRequirement{
			{ID: 1, DocumentName: "PAN Card", Required: true},
			{ID: 2, DocumentName: "Address Proof"},
		},
	}
	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "loan_form.html", map[string]any{
		"Bank":      models.Bank{ID: 1, Name: "Demo Cooperative Bank"},
		"LoanTypes": []models.LoanType{loan},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `name="kyc_5_1"`)
	assert.Contains(t, out, `name="kyc_5_2"`)
	assert.Contains(t, out, "PAN Card (required)")
	assert.Contains(t, out, "1000 to 50000")
}
