package auth

import (
	"errors"
	"fmt"
	"os"

	"freightdesk/logger"
	"freightdesk/middleware"
	authService "freightdesk/services/auth"
	"freightdesk/types"
	authTypes "freightdesk/types/auth"
	"freightdesk/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthController struct {
	service        *authService.Service
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(service *authService.Service, db *gorm.DB, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{service: service, db: db, loggerInstance: asyncLogger}
}

// setSecureCookie sets the session cookie, marked Secure outside development.
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: true,
		Secure:   isProduction,
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing register request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	user, err := h.service.Register(authService.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Mobile:   req.Mobile,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrDuplicateEmail):
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Message: "An account with this email already exists",
				Status:  fiber.StatusConflict,
			})
		case errors.Is(err, authService.ErrWeakPassword):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Password must be at least 8 characters",
				Status:  fiber.StatusBadRequest,
			})
		}
		logger.Error("Failed to register user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to register user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success("User registered: " + user.Email)
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Registration successful. Please log in.",
		Status:  fiber.StatusCreated,
		Data:    user,
	})
}

func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing login request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	result, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Invalid email or password",
				Status:  fiber.StatusUnauthorized,
			})
		}
		logger.Error("Failed to log in user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to log in",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.setSecureCookie(c, middleware.SessionCookieName, result.Token, int(authService.SessionTTL.Seconds()))
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))

	message := "Login successful"
	if !result.User.ProfileComplete() {
		message = "Login successful. Please complete your profile."
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: message,
		Status:  fiber.StatusOK,
		Token:   result.Token,
		Data:    result.User,
	})
}

func (h *AuthController) Logout(c *fiber.Ctx) error {
	h.setSecureCookie(c, middleware.SessionCookieName, "", -1)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Logged out",
		Status:  fiber.StatusOK,
	})
}

func (h *AuthController) Profile(c *fiber.Ctx) error {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Please log in to continue",
			Status:  fiber.StatusUnauthorized,
		})
	}

	user, err := h.service.GetProfile(claims.UserID)
	if err != nil {
		if errors.Is(err, authService.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "User not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load profile", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to load profile",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Profile retrieved",
		Status:  fiber.StatusOK,
		Data:    user,
	})
}

func (h *AuthController) CompleteProfile(c *fiber.Ctx) error {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Please log in to continue",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req authTypes.CompleteProfileRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing profile request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	user, err := h.service.CompleteProfile(claims.UserID, authService.ProfileParams{
		Mobile:  req.Mobile,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Country: req.Country,
		Pincode: req.Pincode,
	})
	if err != nil {
		if errors.Is(err, authService.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "User not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to complete profile", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update profile",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success("Profile completed: " + user.Email)
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Profile updated",
		Status:  fiber.StatusOK,
		Data:    user,
	})
}
