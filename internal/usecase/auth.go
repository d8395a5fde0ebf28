package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"paradise-inn/internal/domain/user"
	"paradise-inn/internal/infra"
	"paradise-inn/internal/pkg/errs"
	"paradise-inn/internal/pkg/jwt"
	"paradise-inn/internal/pkg/password"
)

var (
	ErrEmailAlreadyExists = errs.New("email already exists")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type RegisterInput struct {
	Email       string
	Name        string
	PhoneNumber string
	Password    string
	Role        user.Role
}

type LoginResult struct {
	Token          string
	Role           string
	ExpirationTime string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (*UserView, error)
	Login(ctx context.Context, email, plaintext string) (*LoginResult, error)
}

type authUsecaseImpl struct {
	users      UserRepository
	jwtService *jwt.Service
}

func NewAuthUsecase(users UserRepository, jwtService *jwt.Service) AuthUsecase {
	return &authUsecaseImpl{
		users:      users,
		jwtService: jwtService,
	}
}

func (a *authUsecaseImpl) Register(ctx context.Context, in RegisterInput) (*UserView, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}

	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}

	exists, err := a.users.ExistsByEmail(ctx, email.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to check email existence")
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	role := in.Role
	if role == "" {
		role = user.RoleUser
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	principal, err := user.NewUser(email, in.Name, in.PhoneNumber, hash, role)
	if err != nil {
		return nil, err
	}

	view, err := a.users.Create(ctx, principal)
	if err != nil {
		// A concurrent register can slip past the existence check; the
		// unique index is the authority.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, errs.Wrap(err, "failed to save user")
	}

	return view, nil
}

// Login never distinguishes "unknown email" from "wrong password": both
// surface as ErrInvalidCredentials to prevent account enumeration. Storage
// failures are not credential failures and stay out of that classification.
func (a *authUsecaseImpl) Login(ctx context.Context, email, plaintext string) (*LoginResult, error) {
	view, hash, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "failed to load user for login")
	}

	if err := password.ComparePassword(hash, plaintext); err != nil {
		if errors.Is(err, password.ErrComparisonFailed) || errors.Is(err, password.ErrInvalidPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "failed to verify password")
	}

	token, err := a.jwtService.GenerateToken(view.Email)
	if err != nil {
		slog.Error("failed to generate token", "email", view.Email, "error", err.Error())
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Token:          token,
		Role:           view.Role,
		ExpirationTime: expiryLabel(a.jwtService),
	}, nil
}

func expiryLabel(s *jwt.Service) string {
	days := int(s.Duration().Hours() / 24)
	if days >= 1 {
		return fmt.Sprintf("%d Days", days)
	}
	return s.Duration().String()
}
