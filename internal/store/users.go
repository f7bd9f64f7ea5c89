package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/flowmanager-dev/flowmanager/internal/auth"
	"github.com/flowmanager-dev/flowmanager/internal/models"
)

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// The result is the canonical form used for storage and lookup, and the
// operation is idempotent.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type ProfileParams struct {
	FirstName         string
	LastName          string
	Position          string
	EmploymentType    string
	SupervisorID      *uint
	SalaryRate        float64
	VacationDaysTotal int
}

type CreateUserParams struct {
	Email    string
	Password string
	// RoleID wins when set; otherwise RoleName is resolved, defaulting to
	// the standard "User" role.
	RoleID   uint
	RoleName string
	Profile  *ProfileParams
}

// CreateUser inserts a User with its Credential and optional Profile as one
// related set. The email must be unused; the conflict error carries the id of
// the user already holding it.
func CreateUser(db *gorm.DB, params CreateUserParams) (*models.User, error) {
	email := NormalizeEmail(params.Email)

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, &EmailTakenError{Email: email, UserID: existing.ID}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	roleID := params.RoleID
	if roleID == 0 {
		roleName := params.RoleName
		if roleName == "" {
			roleName = models.RoleUser
		}
		var role models.Role
		if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRoleNotFound
			}
			return nil, err
		}
		roleID = role.ID
	}

	if params.Profile != nil && params.Profile.SupervisorID != nil {
		if err := validateSupervisor(db, *params.Profile.SupervisorID); err != nil {
			return nil, err
		}
	}

	passwordHash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{Email: email, RoleID: roleID}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		credential := models.Credential{
			UserID:            user.ID,
			PasswordHash:      passwordHash,
			PasswordUpdatedAt: time.Now(),
		}
		if err := tx.Create(&credential).Error; err != nil {
			return err
		}

		if params.Profile != nil {
			profile := profileFromParams(user.ID, *params.Profile)
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetUserByID(db, user.ID)
}

func profileFromParams(userID uint, p ProfileParams) models.Profile {
	return models.Profile{
		UserID:            userID,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		Position:          p.Position,
		EmploymentType:    p.EmploymentType,
		SupervisorID:      p.SupervisorID,
		SalaryRate:        p.SalaryRate,
		VacationDaysTotal: p.VacationDaysTotal,
	}
}

func validateSupervisor(db *gorm.DB, supervisorID uint) error {
	var supervisor models.User
	if err := db.Preload("Role").First(&supervisor, supervisorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidSupervisor
		}
		return err
	}
	if !supervisor.Role.IsAdministrative() {
		return ErrInvalidSupervisor
	}
	return nil
}

// VerifyCredentials authenticates an email/password pair. The bcrypt
// comparison runs even when no user or credential exists (against a
// placeholder hash), so the failure path takes the same time either way, and
// every failure mode surfaces as the same ErrInvalidCredentials.
func VerifyCredentials(db *gorm.DB, email, password string) (*models.User, error) {
	email = NormalizeEmail(email)

	var user models.User
	userErr := db.Where("email = ?", email).First(&user).Error
	if userErr != nil && !errors.Is(userErr, gorm.ErrRecordNotFound) {
		return nil, userErr
	}

	var storedHash string
	if userErr == nil {
		var credential models.Credential
		credErr := db.Where("user_id = ?", user.ID).First(&credential).Error
		if credErr != nil && !errors.Is(credErr, gorm.ErrRecordNotFound) {
			return nil, credErr
		}
		if credErr == nil {
			storedHash = credential.PasswordHash
		}
	}

	// Always pay the comparison cost, placeholder hash or not.
	matched := auth.CheckPassword(storedHash, password)

	if userErr != nil || storedHash == "" || !matched {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

func GetUserByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.Preload("Role").Preload("Profile").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Preload("Role").Preload("Profile").
		Where("email = ?", NormalizeEmail(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Preload("Role").Preload("Profile").Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

type UpdateUserParams struct {
	Email   *string
	RoleID  *uint
	Profile *ProfileParams
}

// UpdateUser mutates the user row and, when profile fields are given, upserts
// the profile.
func UpdateUser(db *gorm.DB, id uint, params UpdateUserParams) (*models.User, error) {
	user, err := GetUserByID(db, id)
	if err != nil {
		return nil, err
	}

	if params.Email != nil {
		email := NormalizeEmail(*params.Email)
		if email != user.Email {
			var existing models.User
			err := db.Where("email = ? AND id != ?", email, id).First(&existing).Error
			if err == nil {
				return nil, &EmailTakenError{Email: email, UserID: existing.ID}
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			if err := db.Model(&models.User{}).Where("id = ?", id).
				Update("email", email).Error; err != nil {
				return nil, err
			}
		}
	}

	if params.RoleID != nil {
		if err := db.Model(&models.User{}).Where("id = ?", id).
			Update("role_id", *params.RoleID).Error; err != nil {
			return nil, err
		}
	}

	if params.Profile != nil {
		if params.Profile.SupervisorID != nil {
			if err := validateSupervisor(db, *params.Profile.SupervisorID); err != nil {
				return nil, err
			}
		}
		profile := profileFromParams(id, *params.Profile)
		if user.Profile != nil {
			profile.ID = user.Profile.ID
			if err := db.Save(&profile).Error; err != nil {
				return nil, err
			}
		} else {
			if err := db.Create(&profile).Error; err != nil {
				return nil, err
			}
		}
	}

	return GetUserByID(db, id)
}

// UpdatePassword replaces the stored hash and stamps PasswordUpdatedAt.
func UpdatePassword(db *gorm.DB, userID uint, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	result := db.Model(&models.Credential{}).Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"password_hash":       hash,
			"password_updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
