package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"miniblog/internal/common"
)

var (
	ErrAuthenticationFailure = errors.New("invalid email or password")
)

func NewUserService(db *sql.DB, t *TokenService, mb common.MessageProducer, logger *slog.Logger) *UserService {
	return &UserService{
		m:      NewUserModel(db),
		t:      t,
		mb:     mb,
		logger: logger,
	}
}

// RegisterUser creates a new user account, issues an access token for it and
// publishes a user.created event. If no name is given it defaults to the
// local part of the email address.
func (s *UserService) RegisterUser(ctx context.Context, name, email, password string) (*User, string, error) {
	v := common.NewValidator()
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, "", v.ValidationError()
	}

	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	// Precheck keeps the common case friendly; the unique index on email is
	// the actual guarantee when two registrations race.
	_, err := s.m.getByEmail(ctx, email)
	if err == nil {
		return nil, "", ErrDuplicateEmail
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, "", err
	}

	u := User{
		Name:  name,
		Email: email,
	}

	if err := u.Password.Set(password); err != nil {
		return nil, "", err
	}

	if err := s.m.insert(ctx, &u); err != nil {
		return nil, "", err
	}

	token, err := s.t.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}

	s.publishUserCreated(ctx, &u)

	return &u, token, nil
}

// publishUserCreated publishes the user.created event. A broker outage must
// not fail a registration whose row already persisted, so errors are only
// logged.
func (s *UserService) publishUserCreated(ctx context.Context, u *User) {
	data := struct {
		Email string
		Name  string
	}{
		Email: u.Email,
		Name:  u.Name,
	}

	msg, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("could not marshal user.created event", slog.String("error", err.Error()))
		return
	}

	if err := s.mb.Publish(ctx, msg, common.UserCreatedKey, common.UserExchange); err != nil {
		s.logger.Error("could not publish user.created event", slog.String("email", u.Email), slog.String("error", err.Error()))
	}
}

// LoginUser verifies the credentials and issues a fresh access token.
func (s *UserService) LoginUser(ctx context.Context, email, password string) (*User, string, error) {
	v := common.NewValidator()
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, "", v.ValidationError()
	}

	user, err := s.m.getByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if !user.Password.Matches(password) {
		return nil, "", ErrAuthenticationFailure
	}

	token, err := s.t.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetUserByAccessToken decodes the token and loads the user it references.
func (s *UserService) GetUserByAccessToken(ctx context.Context, token string) (*User, error) {
	id, err := s.t.Validate(token)
	if err != nil {
		return nil, err
	}

	return s.m.getByID(ctx, id)
}

func (s *UserService) GetUsers(ctx context.Context) ([]User, error) {
	return s.m.getAll(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (*User, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getByID(ctx, id)
}

// UpdateUserName changes the name of an existing user. Name is the only
// mutable user field.
func (s *UserService) UpdateUserName(ctx context.Context, id int, name string) error {
	v := common.NewValidator()
	validateName(v, name)
	validateInt(v, id, "id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.updateName(ctx, id, name)
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.delete(ctx, id)
}

func (u *User) IsAnonymous() bool {
	return u == &AnonymousUser
}
