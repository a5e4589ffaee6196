package app

import (
	"context"
	"time"

	"github.com/CrestNiraj12/postdeck/domain"
)

// PostService reads and creates posts on the remote collection endpoint.
type PostService interface {
	// FetchAll returns every post the endpoint knows about, in endpoint order.
	FetchAll(ctx context.Context) ([]domain.PostRecord, error)

	// Create submits a draft and returns the record the endpoint echoed back.
	Create(ctx context.Context, draft domain.Draft) (domain.PostRecord, error)
}

// IDGenerator hands out identifiers for locally created posts.
type IDGenerator interface {
	NewID() string
}

// Clock returns the current time. Injected wherever dates are stamped.
type Clock func() time.Time
