//go:build unit

package builder

import (
	"paradise-inn/internal/domain/user"
	"paradise-inn/internal/usecase"
)

type UserBuilder struct {
	ID          int64
	Email       string
	Name        string
	PhoneNumber string
	Password    string
	Role        string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:          1,
		Email:       "guest@example.com",
		Name:        "Test Guest",
		PhoneNumber: "+12025550123",
		Password:    "password123",
		Role:        "USER",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(email, u.Name, u.PhoneNumber, "hashed_password", user.Role(u.Role))
}

func (u *UserBuilder) BuildView() *usecase.UserView {
	return &usecase.UserView{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
	}
}

func (u *UserBuilder) BuildRegisterMap() map[string]any {
	return map[string]any{
		"email":       u.Email,
		"name":        u.Name,
		"phoneNumber": u.PhoneNumber,
		"password":    u.Password,
	}
}

func (u *UserBuilder) BuildLoginMap() map[string]any {
	return map[string]any{
		"email":    u.Email,
		"password": u.Password,
	}
}
