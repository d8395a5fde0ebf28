package user

import "strings"

// User is the authenticated principal: a guest or an administrator identified
// by a unique email. The role is fixed at registration; the only way to obtain
// ADMIN is the shared-secret registration path, checked before construction.
type User struct {
	id           int64
	email        Email
	name         string
	phoneNumber  string
	passwordHash string
	role         Role
}

func NewUser(email Email, name, phoneNumber, passwordHash string, role Role) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(phoneNumber) == "" {
		return nil, ErrPhoneRequired
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &User{
		email:        email,
		name:         name,
		phoneNumber:  phoneNumber,
		passwordHash: passwordHash,
		role:         role,
	}, nil
}

func ReconstructUser(id int64, email Email, name, phoneNumber, passwordHash string, role Role) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		phoneNumber:  phoneNumber,
		passwordHash: passwordHash,
		role:         role,
	}
}

func (u *User) ID() int64            { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) PhoneNumber() string  { return u.phoneNumber }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
