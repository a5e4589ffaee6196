package app

import (
	"context"

	"github.com/CrestNiraj12/postdeck/domain"
)

// UserService lists the authors posts can be attributed to.
type UserService interface {
	FetchAll(ctx context.Context) ([]domain.User, error)
}
