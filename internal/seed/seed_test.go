package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan_portal/internal/config"
	"loan_portal/internal/models"
)

func testOptions() Options {
	return Options{
		BankName:       "Demo Cooperative Bank",
		BankAddress:    "Mumbai",
		BankThemeColor: "#003366",
		AdminEmail:     "admin@demo.com",
		AdminPassword:  "admin123",
	}
}

func TestRunSeedsBankAndSuperadmin(t *testing.T) {
	db := config.SetupTestDB(t)

	res, err := Run(db, testOptions())
	require.NoError(t, err)
	assert.True(t, res.BankCreated)
	assert.True(t, res.AdminCreated)
	assert.NotZero(t, res.Bank.ID)

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@demo.com").First(&admin).Error)
	assert.Equal(t, models.RoleSuperAdmin, admin.Role)
	assert.Nil(t, admin.BankID)
	assert.True(t, admin.CheckPassword("admin123"))
}

func TestRunIsRepeatable(t *testing.T) {
	db := config.SetupTestDB(t)

	first, err := Run(db, testOptions())
	require.NoError(t, err)

	second, err := Run(db, testOptions())
	require.NoError(t, err)
	assert.False(t, second.BankCreated)
	assert.False(t, second.AdminCreated)
	assert.Equal(t, first.Bank.ID, second.Bank.ID)
	assert.Equal(t, first.Admin.ID, second.Admin.ID)

	var banks, users int64
	db.Model(&models.Bank{}).Count(&banks)
	db.Model(&models.User{}).Count(&users)
	assert.EqualValues(t, 1, banks)
	assert.EqualValues(t, 1, users)
}

func TestCreateUser(t *testing.T) {
	db := config.SetupTestDB(t)
	bank := models.Bank{Name: "North Bank"}
	require.NoError(t, db.Create(&bank).Error)

	user, err := CreateUser(db, "staff@north.example", "s3cret", models.RoleAdmin, &bank.ID)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	require.NotNil(t, user.BankID)
	assert.Equal(t, bank.ID, *user.BankID)

	_, err = CreateUser(db, "staff@north.example", "other", models.RoleAdmin, nil)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions(&config.Config{
		SeedBankName:   "Demo Cooperative Bank",
		SeedAdminEmail: "root@demo.com",
		SeedAdminPass:  "pw",
	})
	assert.Equal(t, "Demo Cooperative Bank", opts.BankName)
	assert.Equal(t, "root@demo.com", opts.AdminEmail)
	assert.Equal(t, "pw", opts.AdminPassword)
}
