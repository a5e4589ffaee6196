package placeholder

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/CrestNiraj12/postdeck/domain"
)

// postService implements app.PostService against /posts.
type postService struct {
	client *Client
}

// NewPostService creates a PostService backed by the placeholder API.
func NewPostService(client *Client) *postService {
	return &postService{client: client}
}

// apiPost is the wire shape of a post record.
type apiPost struct {
	ID     flexString `json:"id"`
	Title  string     `json:"title"`
	Body   string     `json:"body"`
	UserID flexString `json:"userId"`
}

// apiDraft is sent as-is; userId keeps the type the form produced.
type apiDraft struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID string `json:"userId"`
}

func (s *postService) FetchAll(ctx context.Context) ([]domain.PostRecord, error) {
	data, err := s.client.Get(ctx, "/posts")
	if err != nil {
		return nil, fmt.Errorf("fetching posts: %w", err)
	}

	var posts []apiPost
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("parsing posts: %w", err)
	}

	records := make([]domain.PostRecord, 0, len(posts))
	for _, p := range posts {
		records = append(records, p.record())
	}
	return records, nil
}

func (s *postService) Create(ctx context.Context, draft domain.Draft) (domain.PostRecord, error) {
	if err := domain.ValidateDraft(draft); err != nil {
		return domain.PostRecord{}, err
	}

	data, err := s.client.Post(ctx, "/posts", apiDraft{
		Title:  draft.Title,
		Body:   draft.Body,
		UserID: draft.UserID,
	})
	if err != nil {
		return domain.PostRecord{}, fmt.Errorf("creating post: %w", err)
	}

	var p apiPost
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.PostRecord{}, fmt.Errorf("parsing created post: %w", err)
	}
	return p.record(), nil
}

func (p apiPost) record() domain.PostRecord {
	return domain.PostRecord{
		ID:     string(p.ID),
		Title:  p.Title,
		Body:   p.Body,
		UserID: string(p.UserID),
	}
}
