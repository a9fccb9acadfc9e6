package agro

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/common"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/models"
)

func (a *Agro) createUser(input *models.User) (*models.User, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAgroCore,
		zap.String(common.LoggerFieldAgroCategory, common.LoggerCategoryAgroUser),
	)

	if strings.TrimSpace(input.PhoneNumber) == "" {
		return nil, common.ValidationError("phone number is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, common.ValidationError("name is required")
	}
	if input.Language == "" {
		input.Language = "en"
	}

	var existing models.User
	err := a.Db.Conn.Where("phone_number = ?", input.PhoneNumber).First(&existing).Error
	if err == nil {
		return nil, common.ValidationError("user with this phone number already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := a.Db.Conn.Create(input).Error; err != nil {
		return nil, err
	}

	logger.Info("User created",
		zap.Uint("user_id", input.ID),
		zap.String("phone", input.PhoneNumber))

	return input, nil
}

// GetUserByID loads one user, mapping gorm's not-found to the service error
// kind. Exported for use by sibling services.
func (a *Agro) GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	err := a.Db.Conn.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFoundError("User not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type IUserImpl struct {
	agro *Agro
}

func (iu *IUserImpl) CreateUser(input *models.User) (*models.User, error) {
	return iu.agro.createUser(input)
}

func (iu *IUserImpl) GetUser(userID uint) (*models.User, error) {
	return iu.agro.GetUserByID(userID)
}

func (a *Agro) GetIUser() IUser {
	return &IUserImpl{agro: a}
}
