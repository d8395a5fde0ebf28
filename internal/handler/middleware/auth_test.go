//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"paradise-inn/internal/domain/user"
	"paradise-inn/internal/handler/middleware"
	"paradise-inn/internal/pkg/jwt"
	"paradise-inn/tests/common/builder"
	"paradise-inn/tests/common/httptest"
	usecasemock "paradise-inn/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockValidator  *usecasemock.MockTokenValidator
	mockPrincipals *usecasemock.MockPrincipalResolver
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.mockPrincipals = usecasemock.NewMockPrincipalResolver(s.mockCtrl)

	m := middleware.NewAuthMiddleware(s.mockValidator, s.mockPrincipals)
	s.router.Use(m.Authenticate())

	s.router.GET("/whoami", func(c *gin.Context) {
		email, _ := middleware.CurrentPrincipalEmail(c)
		role, _ := middleware.CurrentPrincipalRole(c)
		c.JSON(http.StatusOK, gin.H{"email": email, "role": string(role)})
	})
	s.router.GET("/member", m.RequireAuthority(user.RoleUser, user.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	s.router.GET("/admin", m.RequireAuthority(user.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) expectResolved(role string) {
	principal := builder.NewUserBuilder().With(func(u *builder.UserBuilder) {
		u.Role = role
	}).BuildView()

	s.mockValidator.EXPECT().ExtractSubject("valid-token").Return(principal.Email, nil)
	s.mockPrincipals.EXPECT().ResolveByEmail(gomock.Any(), principal.Email).Return(principal, nil)
	s.mockValidator.EXPECT().Valid("valid-token", principal.Email).Return(true)
}

func (s *AuthMiddlewareTestSuite) TestAuthenticate() {
	s.Run("passes anonymously without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/whoami", nil, "")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body["email"])
		s.Empty(body["role"])
	})

	s.Run("passes anonymously on a rejected token", func() {
		s.mockValidator.EXPECT().ExtractSubject("bad-token").Return("", jwt.ErrInvalidToken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/whoami", nil, "bad-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body["email"])
	})

	s.Run("passes anonymously when the subject has no account", func() {
		s.mockValidator.EXPECT().ExtractSubject("valid-token").Return("ghost@example.com", nil)
		s.mockPrincipals.EXPECT().ResolveByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, errors.New("user not found"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/whoami", nil, "valid-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body["email"])
	})

	s.Run("attaches the stored role, not a token claim", func() {
		s.expectResolved("ADMIN")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/whoami", nil, "valid-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("guest@example.com", body["email"])
		s.Equal("ADMIN", body["role"])
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireAuthority() {
	s.Run("401 for anonymous callers", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "")
		httptest.AssertEnvelopeError(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("403 when the stored role is outside the allowed set", func() {
		s.expectResolved("USER")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "valid-token")
		httptest.AssertEnvelopeError(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("admits an allowed role", func() {
		s.expectResolved("ADMIN")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "valid-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("admits any authenticated role on member routes", func() {
		s.expectResolved("USER")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/member", nil, "valid-token")
		s.Equal(http.StatusOK, rec.Code)
	})
}
