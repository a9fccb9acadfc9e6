package agro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/common"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/models"
	_ "github.com/ChandravardhanKothi/agro-advisory-service/pkg/testing"
)

func TestCreateUser(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, _ := GetMockAgroWithMemorySqliteDialector(t, UseMocks{})
	defer ctrl.Finish()

	phone := uniquePhone()
	user, err := agroObj.User.CreateUser(&models.User{
		PhoneNumber: phone,
		Name:        "Ramesh",
		Location:    "Nashik",
		Latitude:    19.99,
		Longitude:   73.78,
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "en", user.Language, "language defaults to en")

	fetched, err := agroObj.User.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, phone, fetched.PhoneNumber)
	assert.True(t, fetched.WhatsAppEnabled)
	assert.True(t, fetched.IsActive)
}

func TestCreateUser_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, _ := GetMockAgroWithMemorySqliteDialector(t, UseMocks{})
	defer ctrl.Finish()

	_, err := agroObj.User.CreateUser(&models.User{Name: "No Phone"})
	require.Error(t, err)
	assert.Equal(t, common.ErrKindValidation, common.KindOf(err))

	_, err = agroObj.User.CreateUser(&models.User{PhoneNumber: uniquePhone()})
	require.Error(t, err)
	assert.Equal(t, common.ErrKindValidation, common.KindOf(err))

	phone := uniquePhone()
	_, err = agroObj.User.CreateUser(&models.User{PhoneNumber: phone, Name: "First"})
	require.NoError(t, err)

	_, err = agroObj.User.CreateUser(&models.User{PhoneNumber: phone, Name: "Second"})
	require.Error(t, err)
	assert.Equal(t, common.ErrKindValidation, common.KindOf(err))
}

func TestGetUserNotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, _ := GetMockAgroWithMemorySqliteDialector(t, UseMocks{})
	defer ctrl.Finish()

	_, err := agroObj.User.GetUser(987654)
	require.Error(t, err)
	assert.Equal(t, common.ErrKindNotFound, common.KindOf(err))
	assert.Contains(t, err.Error(), "User not found")
}
