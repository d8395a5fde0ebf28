//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"paradise-inn/internal/handler/api"
	resdto "paradise-inn/internal/handler/dto/response"
	"paradise-inn/internal/pkg/config"
	"paradise-inn/internal/usecase"
	"paradise-inn/tests/common/builder"
	"paradise-inn/tests/common/httptest"
	usecasemock "paradise-inn/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAuth *usecasemock.MockAuthUsecase
	handler  *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = usecasemock.NewMockAuthUsecase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockAuth, config.NewTestConfig().Auth)

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/register-admin", s.handler.RegisterAdmin)
	s.router.POST("/auth/login", s.handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewUserBuilder().BuildRegisterMap()
	returnUser := builder.NewUserBuilder().BuildView()

	s.Run("success: returns 200 OK with the created user", func() {
		s.mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.Envelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(http.StatusOK, response.StatusCode)
		s.Equal("Successful", response.Message)
		s.Require().NotNil(response.User)
		s.Equal(returnUser.Email, response.User.Email)
		s.Equal(returnUser.Role, response.User.Role)
	})

	s.Run("error: 400 Bad Request when required fields are missing", func() {
		for _, field := range []string{"email", "name", "phoneNumber", "password"} {
			s.Run("missing "+field, func() {
				broken := builder.NewUserBuilder().BuildRegisterMap()
				delete(broken, field)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, broken, "")
				httptest.AssertEnvelopeError(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "duplicate email",
				usecaseError:   usecase.ErrEmailAlreadyExists,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "guest@example.com already exists",
			},
			{
				name:           "internal server error",
				usecaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertEnvelopeError(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestRegisterAdmin() {
	reqBody := builder.NewUserBuilder().BuildRegisterMap()

	s.Run("success: grants ADMIN when the secret key matches", func() {
		adminView := builder.NewUserBuilder().With(func(u *builder.UserBuilder) {
			u.Role = "ADMIN"
		}).BuildView()

		s.mockAuth.EXPECT().
			Register(gomock.Any(), gomock.AssignableToTypeOf(usecase.RegisterInput{})).
			DoAndReturn(func(_ any, in usecase.RegisterInput) (*usecase.UserView, error) {
				s.Equal("ADMIN", string(in.Role))
				return adminView, nil
			}).Times(1)

		url := "/auth/register-admin?secretKey=" + config.NewTestConfig().Auth.AdminSecretKey
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.Envelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.User)
		s.Equal("ADMIN", response.User.Role)
	})

	s.Run("error: 403 Forbidden on a wrong secret key, usecase never called", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register-admin?secretKey=wrong", reqBody, "")
		httptest.AssertEnvelopeError(s.T(), rec, http.StatusForbidden, "Invalid Admin Secret Key")
	})

	s.Run("error: 403 Forbidden when the secret key is absent", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register-admin", reqBody, "")
		httptest.AssertEnvelopeError(s.T(), rec, http.StatusForbidden, "Invalid Admin Secret Key")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewUserBuilder().BuildLoginMap()

	s.Run("success: returns token, role and expiration", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), "guest@example.com", "password123").
			Return(&usecase.LoginResult{
				Token:          "test-jwt-token",
				Role:           "USER",
				ExpirationTime: "7 Days",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.Envelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Successful", response.Message)
		s.Equal("test-jwt-token", response.Token)
		s.Equal("USER", response.Role)
		s.Equal("7 Days", response.ExpirationTime)
	})

	s.Run("error: 400 Bad Request when a credential field is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"email": "guest@example.com"}, "")
		httptest.AssertEnvelopeError(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				usecaseError:   usecase.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "internal server error",
				usecaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertEnvelopeError(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
