//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"paradise-inn/internal/domain/user"
	"paradise-inn/internal/infra"
	"paradise-inn/internal/pkg/clock"
	"paradise-inn/internal/pkg/jwt"
	"paradise-inn/internal/pkg/password"
	"paradise-inn/internal/usecase"
	"paradise-inn/tests/common/builder"
	usecasemock "paradise-inn/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthUsecaseTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockUsers *usecasemock.MockUserRepository
	jwtSvc    *jwt.Service
	uc        usecase.AuthUsecase
}

func (s *AuthUsecaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsers = usecasemock.NewMockUserRepository(s.mockCtrl)
	clk := clock.NewMockClock(time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC))
	s.jwtSvc = jwt.NewService("test-signing-secret", 168*time.Hour, clk)
	s.uc = usecase.NewAuthUsecase(s.mockUsers, s.jwtSvc)
}

func (s *AuthUsecaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthUsecaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUsecaseTestSuite))
}

func registerInput() usecase.RegisterInput {
	b := builder.NewUserBuilder()
	return usecase.RegisterInput{
		Email:       b.Email,
		Name:        b.Name,
		PhoneNumber: b.PhoneNumber,
		Password:    b.Password,
		Role:        user.RoleUser,
	}
}

func (s *AuthUsecaseTestSuite) TestRegister() {
	s.Run("success: hashes the password and stores the user", func() {
		in := registerInput()
		returnView := builder.NewUserBuilder().BuildView()

		s.mockUsers.EXPECT().ExistsByEmail(gomock.Any(), in.Email).Return(false, nil)
		s.mockUsers.EXPECT().
			Create(gomock.Any(), gomock.AssignableToTypeOf(&user.User{})).
			DoAndReturn(func(_ any, u *user.User) (*usecase.UserView, error) {
				s.Equal(in.Email, u.Email().Value())
				s.NotEqual(in.Password, u.PasswordHash())
				s.NoError(password.ComparePassword(u.PasswordHash(), in.Password))
				return returnView, nil
			}).Times(1)

		view, err := s.uc.Register(context.Background(), in)
		s.Require().NoError(err)
		s.Equal(returnView.Email, view.Email)
	})

	s.Run("error: email already taken", func() {
		in := registerInput()
		s.mockUsers.EXPECT().ExistsByEmail(gomock.Any(), in.Email).Return(true, nil)

		_, err := s.uc.Register(context.Background(), in)
		s.ErrorIs(err, usecase.ErrEmailAlreadyExists)
	})

	s.Run("error: concurrent register hits the unique index", func() {
		in := registerInput()
		s.mockUsers.EXPECT().ExistsByEmail(gomock.Any(), in.Email).Return(false, nil)
		s.mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to create user", errors.New("duplicate key value"), infra.KindDuplicateKey))

		_, err := s.uc.Register(context.Background(), in)
		s.ErrorIs(err, usecase.ErrEmailAlreadyExists)
	})

	s.Run("error: malformed email, storage never touched", func() {
		in := registerInput()
		in.Email = "not-an-email"

		_, err := s.uc.Register(context.Background(), in)
		s.ErrorIs(err, user.ErrInvalidEmail)
	})

	s.Run("error: short password, storage never touched", func() {
		in := registerInput()
		in.Password = "short"

		_, err := s.uc.Register(context.Background(), in)
		s.ErrorIs(err, user.ErrPasswordTooWeak)
	})
}

func (s *AuthUsecaseTestSuite) TestLogin() {
	in := registerInput()
	returnView := builder.NewUserBuilder().BuildView()

	s.Run("success: returns a verifiable token and the stored role", func() {
		hash, err := password.HashPassword(in.Password)
		s.Require().NoError(err)

		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), in.Email).Return(returnView, hash, nil)

		result, err := s.uc.Login(context.Background(), in.Email, in.Password)
		s.Require().NoError(err)
		s.Equal("USER", result.Role)
		s.Equal("7 Days", result.ExpirationTime)

		subject, err := s.jwtSvc.ExtractSubject(result.Token)
		s.Require().NoError(err)
		s.Equal(in.Email, subject)
	})

	s.Run("error: wrong password", func() {
		hash, err := password.HashPassword(in.Password)
		s.Require().NoError(err)

		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), in.Email).Return(returnView, hash, nil)

		_, err = s.uc.Login(context.Background(), in.Email, "wrong-password")
		s.ErrorIs(err, usecase.ErrInvalidCredentials)
	})

	s.Run("error: unknown email reads the same as a wrong password", func() {
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, "", infra.WrapRepoErr("no rows", errors.New("no rows in result set"), infra.KindNotFound))

		_, err := s.uc.Login(context.Background(), "ghost@example.com", in.Password)
		s.ErrorIs(err, usecase.ErrInvalidCredentials)
	})

	s.Run("error: storage failure is not a credential failure", func() {
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), in.Email).
			Return(nil, "", infra.WrapRepoErr("failed to query user", errors.New("connection refused")))

		_, err := s.uc.Login(context.Background(), in.Email, in.Password)
		s.Require().Error(err)
		s.NotErrorIs(err, usecase.ErrInvalidCredentials)
	})
}
