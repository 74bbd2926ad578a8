package auth

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/touchlinehq/touchline/internal/user"
)

type AuthRepository interface {
	CreateUser(u *user.User) error
	GetUserByEmail(email string) (*user.User, error)
	GetUserByUsername(username string) (*user.User, error)
	GetUserByID(id uint) (*user.User, error)
	UpdateUser(u *user.User) error

	SaveRefreshToken(token *user.RefreshToken) error
	GetRefreshToken(tokenString string) (*user.RefreshToken, error)
	InvalidateRefreshToken(tokenString string) error
	InvalidateAllRefreshTokensForUser(userID uint) error

	AssignRoleToUser(userID uint, role string) error
	GetUserRoles(userID uint) ([]string, error)
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *authRepository) GetUserByEmail(email string) (*user.User, error) {
	var u user.User
	if err := r.db.Preload("Roles").Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) GetUserByUsername(username string) (*user.User, error) {
	var u user.User
	if err := r.db.Preload("Roles").Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) GetUserByID(id uint) (*user.User, error) {
	var u user.User
	if err := r.db.Preload("Roles").First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) UpdateUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *authRepository) SaveRefreshToken(token *user.RefreshToken) error {
	return r.db.Create(token).Error
}

func (r *authRepository) GetRefreshToken(tokenString string) (*user.RefreshToken, error) {
	var rt user.RefreshToken
	err := r.db.Where("token = ? AND revoked = ? AND expires_at > ?", tokenString, false, time.Now()).First(&rt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

func (r *authRepository) InvalidateRefreshToken(tokenString string) error {
	return r.db.Model(&user.RefreshToken{}).Where("token = ?", tokenString).Update("revoked", true).Error
}

func (r *authRepository) InvalidateAllRefreshTokensForUser(userID uint) error {
	return r.db.Model(&user.RefreshToken{}).Where("user_id = ?", userID).Update("revoked", true).Error
}

func (r *authRepository) AssignRoleToUser(userID uint, roleName string) error {
	var role user.Role
	if err := r.db.Where("name = ?", roleName).FirstOrCreate(&role, user.Role{Name: roleName}).Error; err != nil {
		return err
	}
	var u user.User
	if err := r.db.First(&u, userID).Error; err != nil {
		return err
	}
	return r.db.Model(&u).Association("Roles").Append(&role)
}

func (r *authRepository) GetUserRoles(userID uint) ([]string, error) {
	var u user.User
	if err := r.db.Preload("Roles").First(&u, userID).Error; err != nil {
		return nil, err
	}
	roles := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		roles = append(roles, role.Name)
	}
	return roles, nil
}
