package userservice

import (
	"database/sql"
	"log/slog"
	"time"

	"miniblog/internal/common"
)

var (
	AnonymousUser = User{}
)

type UserService struct {
	m      *UserModel
	t      *TokenService
	mb     common.MessageProducer
	logger *slog.Logger
}

type UserModel struct {
	db *sql.DB
}

type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  Password  `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Password keeps the stored hash out of every JSON response.
type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}
