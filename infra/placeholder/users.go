package placeholder

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/CrestNiraj12/postdeck/domain"
)

// userService implements app.UserService against /users.
type userService struct {
	client *Client
}

// NewUserService creates a UserService backed by the placeholder API.
func NewUserService(client *Client) *userService {
	return &userService{client: client}
}

type apiUser struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (s *userService) FetchAll(ctx context.Context) ([]domain.User, error) {
	data, err := s.client.Get(ctx, "/users")
	if err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}

	var users []apiUser
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parsing users: %w", err)
	}

	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, domain.User{ID: u.ID, Name: u.Name})
	}
	return out, nil
}
