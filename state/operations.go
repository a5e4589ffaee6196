package state

import (
	"context"

	"github.com/CrestNiraj12/postdeck/app"
	"github.com/CrestNiraj12/postdeck/domain"
)

// FetchPosts loads every post and appends the result to the collection.
func FetchPosts(svc app.PostService, clock app.Clock) Thunk[[]domain.PostRecord] {
	return fetchPosts(svc, clock, false)
}

// RefreshPosts loads every post and replaces the collection with the result.
func RefreshPosts(svc app.PostService, clock app.Clock) Thunk[[]domain.PostRecord] {
	return fetchPosts(svc, clock, true)
}

func fetchPosts(svc app.PostService, clock app.Clock, replace bool) Thunk[[]domain.PostRecord] {
	return Thunk[[]domain.PostRecord]{
		Type:    typeFetchPosts,
		Run:     svc.FetchAll,
		Pending: func() Event { return PostsLoadPending{} },
		Fulfilled: func(recs []domain.PostRecord) Event {
			return PostsLoaded{Records: recs, At: clock(), Replace: replace}
		},
		Rejected: func(err error) Event { return PostsLoadFailed{Message: err.Error()} },
	}
}

// AddNewPost submits draft to the remote endpoint.
func AddNewPost(svc app.PostService, clock app.Clock, draft domain.Draft) Thunk[domain.PostRecord] {
	return Thunk[domain.PostRecord]{
		Type: typeAddNewPost,
		Run: func(ctx context.Context) (domain.PostRecord, error) {
			return svc.Create(ctx, draft)
		},
		Pending: func() Event { return PostCreatePending{Draft: draft} },
		Fulfilled: func(rec domain.PostRecord) Event {
			return PostCreated{Record: rec, At: clock()}
		},
		Rejected: func(err error) Event { return PostCreateFailed{Message: err.Error(), Err: err} },
	}
}

// FetchUsers loads the author list.
func FetchUsers(svc app.UserService) Thunk[[]domain.User] {
	return Thunk[[]domain.User]{
		Type:      typeFetchUsers,
		Run:       svc.FetchAll,
		Pending:   func() Event { return UsersLoadPending{} },
		Fulfilled: func(users []domain.User) Event { return UsersLoaded{Users: users} },
		Rejected:  func(err error) Event { return UsersLoadFailed{Message: err.Error()} },
	}
}
