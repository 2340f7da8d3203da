package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/corpkit/company-portal/internal/api/dto"
	"github.com/corpkit/company-portal/internal/auth"
	"github.com/corpkit/company-portal/internal/service"
	apperrors "github.com/corpkit/company-portal/pkg/util"
)

// AuthHandler exposes login and token verification.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Email and password are required")
	}
	if !req.Present() {
		return apperrors.NewBadRequest("Email and password are required")
	}
	email, password, ok := req.Credentials()
	if !ok {
		return apperrors.NewInvalidCredentials("Invalid credentials")
	}

	identity, token, _, err := h.auth.Login(c.UserContext(), email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return apperrors.NewInvalidCredentials("Invalid credentials")
		}
		return err
	}

	return c.JSON(dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			Email: identity.Email,
			Role:  identity.Role,
			Name:  identity.Name,
		},
	})
}

// Verify handles GET /verify.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewMissingToken("Token is missing")
	}
	return c.JSON(dto.VerifyResponse{Valid: true, User: claims})
}
