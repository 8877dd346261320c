package http

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/vmartins/estoque-api/internal/application/dto"
	"github.com/vmartins/estoque-api/pkg/config"
	"github.com/vmartins/estoque-api/pkg/jwt"
)

// AuthHandler emite tokens para o operador configurado via env
// (AUTH_USERNAME / AUTH_PASSWORD_HASH).
type AuthHandler struct {
	cfg config.AuthConfig
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Login godoc
// @Summary      Autenticar operador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "usuario, senha"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Username != h.cfg.Username || h.cfg.PasswordHash == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciais inválidas"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.PasswordHash), []byte(in.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciais inválidas"})
	}
	token, err := jwt.Generate(h.cfg.JWTSecret, in.Username, h.cfg.JWTIssuer, h.cfg.JWTExpMinutes)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.LoginResponse{Token: token})
}
