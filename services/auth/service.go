package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freightdesk/constants"
	userModel "freightdesk/models/user"
	"freightdesk/utils"
)

var (
	// ErrInvalidCredentials signals wrong email or password.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrWeakPassword signals password doesn't meet requirements.
	ErrWeakPassword = errors.New("auth: password must be at least 8 characters")
)

// SessionTTL is how long an issued session token stays valid.
const SessionTTL = 8 * time.Hour

// Service handles authentication business logic.
type Service struct {
	repo          Repository
	sessionSecret string
}

// LoginResult bundles the token and user returned after a successful login.
type LoginResult struct {
	Token string
	User  userModel.User
}

// RegisterParams are the sign-up inputs.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Mobile   string
	Role     string
}

// NewService creates a new authentication service.
func NewService(repo Repository, sessionSecret string) *Service {
	return &Service{repo: repo, sessionSecret: sessionSecret}
}

// Register creates a new user account with a salted password hash. Unknown
// roles fall back to new_user rather than failing the sign-up.
func (s *Service) Register(params RegisterParams) (userModel.User, error) {
	if len(params.Password) < 8 {
		return userModel.User{}, ErrWeakPassword
	}

	email := strings.ToLower(strings.TrimSpace(params.Email))
	if email == "" || strings.TrimSpace(params.Name) == "" {
		return userModel.User{}, fmt.Errorf("auth: name and email are required")
	}

	role := strings.TrimSpace(params.Role)
	if !constants.IsValidRole(role) {
		role = constants.RoleNewUser
	}

	passwordHash, err := utils.HashPassword(params.Password)
	if err != nil {
		return userModel.User{}, fmt.Errorf("auth: hash password: %w", err)
	}

	return s.repo.CreateUser(CreateUserParams{
		Name:         params.Name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Mobile:       params.Mobile,
	})
}

// Login authenticates a user and returns a signed session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *Service) Login(email, password string) (LoginResult, error) {
	user, err := s.repo.GetUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(s.sessionSecret, user.ID, user.Email, user.Role, SessionTTL)
	if err != nil {
		return LoginResult{}, fmt.Errorf("auth: generate token: %w", err)
	}

	return LoginResult{Token: token, User: user}, nil
}

// GetProfile returns the user record for a session.
func (s *Service) GetProfile(userID uint) (userModel.User, error) {
	return s.repo.GetUserByID(userID)
}

// CompleteProfile fills in the contact fields collected after first login.
func (s *Service) CompleteProfile(userID uint, params ProfileParams) (userModel.User, error) {
	return s.repo.UpdateProfile(userID, params)
}

// VerifyToken validates a session token and returns its claims.
func (s *Service) VerifyToken(token string) (*utils.SessionClaims, error) {
	return utils.ParseSessionToken(s.sessionSecret, token)
}
