package auth

import (
	"errors"
	"testing"

	"freightdesk/constants"
	userModel "freightdesk/models/user"
)

type fakeRepo struct {
	users  map[string]userModel.User
	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]userModel.User), nextID: 1}
}

func (r *fakeRepo) CreateUser(params CreateUserParams) (userModel.User, error) {
	if _, exists := r.users[params.Email]; exists {
		return userModel.User{}, ErrDuplicateEmail
	}
	user := userModel.User{
		ID:           r.nextID,
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		Role:         params.Role,
		Mobile:       params.Mobile,
	}
	r.nextID++
	r.users[params.Email] = user
	return user, nil
}

func (r *fakeRepo) GetUserByEmail(email string) (userModel.User, error) {
	user, ok := r.users[email]
	if !ok {
		return userModel.User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *fakeRepo) GetUserByID(userID uint) (userModel.User, error) {
	for _, user := range r.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return userModel.User{}, ErrUserNotFound
}

func (r *fakeRepo) UpdateProfile(userID uint, params ProfileParams) (userModel.User, error) {
	for email, user := range r.users {
		if user.ID == userID {
			user.Mobile = params.Mobile
			user.Address = params.Address
			user.City = params.City
			user.State = params.State
			user.Country = params.Country
			user.Pincode = params.Pincode
			r.users[email] = user
			return user, nil
		}
	}
	return userModel.User{}, ErrUserNotFound
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(newFakeRepo(), "test-secret")

	user, err := svc.Register(RegisterParams{
		Name:     "Asha Nair",
		Email:    "Asha@Example.com",
		Password: "correct horse",
		Role:     constants.RoleSales,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "asha@example.com" {
		t.Errorf("email not lowercased: %q", user.Email)
	}
	if user.PasswordHash == "correct horse" {
		t.Error("password stored in the clear")
	}

	result, err := svc.Login("asha@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token == "" {
		t.Error("login returned no token")
	}

	claims, err := svc.VerifyToken(result.Token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != constants.RoleSales {
		t.Errorf("claims = %+v, want user %d role %s", claims, user.ID, constants.RoleSales)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	svc := NewService(newFakeRepo(), "test-secret")

	_, err := svc.Register(RegisterParams{
		Name:     "Asha Nair",
		Email:    "asha@example.com",
		Password: "short",
	})
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("err = %v, want ErrWeakPassword", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeRepo(), "test-secret")

	params := RegisterParams{Name: "Asha Nair", Email: "asha@example.com", Password: "correct horse"}
	if _, err := svc.Register(params); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(params); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestRegisterInvalidRoleFallsBack(t *testing.T) {
	svc := NewService(newFakeRepo(), "test-secret")

	user, err := svc.Register(RegisterParams{
		Name:     "Asha Nair",
		Email:    "asha@example.com",
		Password: "correct horse",
		Role:     "superuser",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != constants.RoleNewUser {
		t.Errorf("role = %q, want %q", user.Role, constants.RoleNewUser)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewService(newFakeRepo(), "test-secret")

	if _, err := svc.Register(RegisterParams{
		Name: "Asha Nair", Email: "asha@example.com", Password: "correct horse",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Login("asha@example.com", "wrong horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login("nobody@example.com", "correct horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestCompleteProfile(t *testing.T) {
	svc := NewService(newFakeRepo(), "test-secret")

	user, err := svc.Register(RegisterParams{
		Name: "Asha Nair", Email: "asha@example.com", Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ProfileComplete() {
		t.Fatal("fresh account should not have a complete profile")
	}

	updated, err := svc.CompleteProfile(user.ID, ProfileParams{
		Mobile:  "9876543210",
		Address: "12 Harbour Road",
		City:    "Chennai",
		State:   "Tamil Nadu",
		Country: "India",
		Pincode: "600001",
	})
	if err != nil {
		t.Fatalf("CompleteProfile: %v", err)
	}
	if !updated.ProfileComplete() {
		t.Error("profile should be complete after update")
	}
}
