package auth

import (
	"fmt"
	"strings"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Mobile   string `json:"mobile"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CompleteProfileRequest struct {
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Pincode string `json:"pincode"`
}

func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("email is not valid")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

func (r CompleteProfileRequest) Validate() error {
	if strings.TrimSpace(r.Mobile) == "" {
		return fmt.Errorf("mobile is required")
	}
	if strings.TrimSpace(r.Address) == "" {
		return fmt.Errorf("address is required")
	}
	if strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("city is required")
	}
	if strings.TrimSpace(r.State) == "" {
		return fmt.Errorf("state is required")
	}
	if strings.TrimSpace(r.Country) == "" {
		return fmt.Errorf("country is required")
	}
	if strings.TrimSpace(r.Pincode) == "" {
		return fmt.Errorf("pincode is required")
	}
	return nil
}
