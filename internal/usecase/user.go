package usecase

import (
	"context"

	"paradise-inn/internal/infra"
	"paradise-inn/internal/pkg/errs"
)

var ErrUserNotFound = errs.New("user not found")

type UserUsecase interface {
	List(ctx context.Context) ([]UserView, error)
	GetByID(ctx context.Context, id int64) (*UserView, error)
	GetByEmail(ctx context.Context, email string) (*UserView, error)
	BookingHistory(ctx context.Context, id int64) (*UserView, error)
	Delete(ctx context.Context, id int64) error
}

// PrincipalResolver is the narrow port the auth middleware uses to re-read a
// principal's stored role on every request instead of trusting token claims.
type PrincipalResolver interface {
	ResolveByEmail(ctx context.Context, email string) (*UserView, error)
}

type userUsecaseImpl struct {
	users    UserRepository
	bookings BookingRepository
}

func NewUserUsecase(users UserRepository, bookings BookingRepository) UserUsecase {
	return &userUsecaseImpl{
		users:    users,
		bookings: bookings,
	}
}

func (u *userUsecaseImpl) List(ctx context.Context) ([]UserView, error) {
	views, err := u.users.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list users")
	}
	return views, nil
}

func (u *userUsecaseImpl) GetByID(ctx context.Context, id int64) (*UserView, error) {
	view, err := u.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}
	return view, nil
}

func (u *userUsecaseImpl) GetByEmail(ctx context.Context, email string) (*UserView, error) {
	view, _, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user by email")
	}
	return view, nil
}

func (u *userUsecaseImpl) BookingHistory(ctx context.Context, id int64) (*UserView, error) {
	view, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	history, err := u.bookings.FindByUserID(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load booking history")
	}

	view.Bookings = history
	return view, nil
}

func (u *userUsecaseImpl) Delete(ctx context.Context, id int64) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}

	if err := u.users.Delete(ctx, id); err != nil {
		return errs.Wrap(err, "failed to delete user")
	}
	return nil
}

// NewPrincipalResolver adapts the user usecase for the auth middleware.
func NewPrincipalResolver(users UserUsecase) PrincipalResolver {
	return &principalResolverImpl{users: users}
}

type principalResolverImpl struct {
	users UserUsecase
}

func (p *principalResolverImpl) ResolveByEmail(ctx context.Context, email string) (*UserView, error) {
	return p.users.GetByEmail(ctx, email)
}
