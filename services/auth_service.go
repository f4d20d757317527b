package services

import (
	stderrors "errors"
	"strings"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/validator"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Preload("Profile").Where("email = ?", email).First(&user)

	if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, errors.NewAppError(errors.ErrCodeUserNotFound, "No user with that email", result.Error)
	}
	if result.Error != nil {
		return user, result.Error
	}
	return user, nil
}

func GetUserByUsername(username string) (models.User, error) {
	var user models.User
	result := config.DB.Preload("Profile").Where("username = ?", username).First(&user)

	if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, errors.NewAppError(errors.ErrCodeUserNotFound, "No user with that username", result.Error)
	}
	if result.Error != nil {
		return user, result.Error
	}
	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func CheckPassword(hashed, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Invalid credentials", err)
	}
	return nil
}

// RegisterUser creates a user and its profile in one transaction.
func RegisterUser(input dto.RegisterInput) (models.User, error) {
	if err := validator.ValidateRegister(&input); err != nil {
		return models.User{}, err
	}

	input.Email = strings.ToLower(input.Email)

	if _, err := GetUserByEmail(input.Email); err == nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeUserExists, "Email is already in use", nil)
	}
	if _, err := GetUserByUsername(input.Username); err == nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeUserExists, "Username is already in use", nil)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  hashedPassword,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      constants.RoleGuest,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.Profile{
			UserID: user.ID,
			Phone:  input.Phone,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		user.Profile = &profile
		return nil
	})
	if err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Failed to create user", err)
	}

	return user, nil
}

// UpdateUserProfile applies a partial update to a user and its profile.
// Input is validated before anything is written, and the user and profile
// rows are saved in one transaction so a failure leaves both untouched.
func UpdateUserProfile(db *gorm.DB, userID uint, req dto.UpdateUserRequest) (models.User, error) {
	if req.Phone != nil {
		if err := validator.ValidatePhone(*req.Phone); err != nil {
			return models.User{}, err
		}
	}

	var user models.User
	if err := db.Preload("Profile").First(&user, userID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, errors.NewAppError(errors.ErrCodeUserNotFound, "User not found", err)
		}
		return models.User{}, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if req.FirstName != nil {
			user.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			user.LastName = *req.LastName
		}
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		if req.Phone != nil {
			if user.Profile == nil {
				profile := models.Profile{UserID: user.ID, Phone: *req.Phone}
				if err := tx.Create(&profile).Error; err != nil {
					return err
				}
				user.Profile = &profile
			} else {
				user.Profile.Phone = *req.Phone
				if err := tx.Save(user.Profile).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Failed to update user", err)
	}

	return user, nil
}

// CreateGoogleUser provisions an account for a verified Google identity.
// The random local password is never disclosed; sign-in stays with Google.
func CreateGoogleUser(name, email string) (models.User, error) {
	randomPassword, err := HashPassword(uuid.NewString())
	if err != nil {
		return models.User{}, err
	}

	username := email
	if at := strings.Index(email, "@"); at > 0 {
		username = email[:at]
	}
	if _, err := GetUserByUsername(username); err == nil {
		username = email
	}

	user := models.User{
		Username:  username,
		Email:     strings.ToLower(email),
		Password:  randomPassword,
		FirstName: name,
		Role:      constants.RoleGuest,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.Profile{UserID: user.ID}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		user.Profile = &profile
		return nil
	})
	if err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Failed to create user", err)
	}

	return user, nil
}
