package api

import (
	"errors"
	"fmt"
	"net/http"

	"paradise-inn/internal/domain/user"
	reqdto "paradise-inn/internal/handler/dto/request"
	resdto "paradise-inn/internal/handler/dto/response"
	"paradise-inn/internal/pkg/config"
	"paradise-inn/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	authConfig  config.AuthConfig
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, authConfig config.AuthConfig) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		authConfig:  authConfig,
	}
}

// @Summary Register user
// @Description Register a new account with the USER role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration details"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} resdto.Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	h.register(c, user.RoleUser)
}

// @Summary Register admin
// @Description Register an ADMIN account, gated by the shared secret key
// @Tags auth
// @Accept json
// @Produce json
// @Param secretKey query string true "Admin registration secret"
// @Param request body reqdto.RegisterRequest true "Registration details"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} resdto.Envelope
// @Failure 403 {object} resdto.Envelope
// @Router /auth/register-admin [post]
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	if c.Query("secretKey") != h.authConfig.AdminSecretKey {
		c.JSON(http.StatusForbidden, resdto.NewEnvelope(http.StatusForbidden, "Invalid Admin Secret Key"))
		return
	}
	h.register(c, user.RoleAdmin)
}

func (h *AuthHandler) register(c *gin.Context, role user.Role) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest, "Invalid request format"))
		return
	}

	view, err := h.authUsecase.Register(c.Request.Context(), usecase.RegisterInput{
		Email:       req.Email,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Role:        role,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest, fmt.Sprintf("%s already exists", req.Email)))
		case errors.Is(err, user.ErrInvalidEmail),
			errors.Is(err, user.ErrPasswordTooWeak),
			errors.Is(err, user.ErrNameRequired),
			errors.Is(err, user.ErrPhoneRequired),
			errors.Is(err, user.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, resdto.NewEnvelope(http.StatusInternalServerError, "Internal server error"))
		}
		return
	}

	userResp, err := resdto.FromUserView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.NewEnvelope(http.StatusInternalServerError, "Internal server error"))
		return
	}

	resp := resdto.NewEnvelope(http.StatusOK, "Successful")
	resp.User = userResp
	c.JSON(http.StatusOK, resp)
}

// @Summary Log in
// @Description Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} resdto.Envelope
// @Failure 401 {object} resdto.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest, "Invalid request format"))
		return
	}

	result, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// One message for every credential failure; nothing reveals
		// whether the account exists.
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, resdto.NewEnvelope(http.StatusUnauthorized, "Invalid email or password"))
			return
		}
		c.JSON(http.StatusInternalServerError, resdto.NewEnvelope(http.StatusInternalServerError, "Internal server error"))
		return
	}

	resp := resdto.NewEnvelope(http.StatusOK, "Successful")
	resp.Token = result.Token
	resp.Role = result.Role
	resp.ExpirationTime = result.ExpirationTime
	c.JSON(http.StatusOK, resp)
}
