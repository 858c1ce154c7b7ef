package auth

import (
	"errors"
	"fmt"

	userModel "freightdesk/models/user"

	"gorm.io/gorm"
)

var (
	// ErrUserNotFound signals that the user does not exist.
	ErrUserNotFound = errors.New("auth: user not found")
	// ErrDuplicateEmail signals that the email is already registered.
	ErrDuplicateEmail = errors.New("auth: email already exists")
)

// Repository handles data access for user accounts.
type Repository interface {
	CreateUser(params CreateUserParams) (userModel.User, error)
	GetUserByEmail(email string) (userModel.User, error)
	GetUserByID(userID uint) (userModel.User, error)
	UpdateProfile(userID uint, params ProfileParams) (userModel.User, error)
}

// CreateUserParams contains write parameters for creating users.
type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Mobile       string
}

// ProfileParams contains the profile completion fields.
type ProfileParams struct {
	Mobile  string
	Address string
	City    string
	State   string
	Country string
	Pincode string
}

// GormRepository implements Repository backed by PostgreSQL through GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewRepository creates a GORM-backed auth repository.
func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) CreateUser(params CreateUserParams) (userModel.User, error) {
	var existing userModel.User
	err := r.db.Where("email = ?", params.Email).First(&existing).Error
	if err == nil {
		return userModel.User{}, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return userModel.User{}, fmt.Errorf("auth: check existing email: %w", err)
	}

	user := userModel.User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		Role:         params.Role,
		Mobile:       params.Mobile,
	}
	if err := r.db.Create(&user).Error; err != nil {
		return userModel.User{}, fmt.Errorf("auth: create user: %w", err)
	}
	return user, nil
}

func (r *GormRepository) GetUserByEmail(email string) (userModel.User, error) {
	var user userModel.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return userModel.User{}, ErrUserNotFound
		}
		return userModel.User{}, fmt.Errorf("auth: get user by email: %w", err)
	}
	return user, nil
}

func (r *GormRepository) GetUserByID(userID uint) (userModel.User, error) {
	var user userModel.User
	if err := r.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return userModel.User{}, ErrUserNotFound
		}
		return userModel.User{}, fmt.Errorf("auth: get user by id: %w", err)
	}
	return user, nil
}

func (r *GormRepository) UpdateProfile(userID uint, params ProfileParams) (userModel.User, error) {
	var user userModel.User
	if err := r.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return userModel.User{}, ErrUserNotFound
		}
		return userModel.User{}, fmt.Errorf("auth: load user: %w", err)
	}

	user.Mobile = params.Mobile
	user.Address = params.Address
	user.City = params.City
	user.State = params.State
	user.Country = params.Country
	user.Pincode = params.Pincode

	if err := r.db.Save(&user).Error; err != nil {
		return userModel.User{}, fmt.Errorf("auth: update profile: %w", err)
	}
	return user, nil
}
