package state

import (
	"time"

	"github.com/CrestNiraj12/postdeck/domain"
)

// Event is anything the store knows how to reduce.
type Event interface {
	Type() string
}

const (
	typeFetchPosts = "posts/fetchPosts"
	typeAddNewPost = "posts/addNewPost"
	typeFetchUsers = "users/fetchUsers"
)

// --- posts: load-all family ---

// PostsLoadPending is emitted when a load-all starts.
type PostsLoadPending struct{}

// PostsLoaded carries the records of a successful load-all. At is the
// settlement time used to derive synthetic recency dates. Replace swaps the
// collection instead of appending to it.
type PostsLoaded struct {
	Records []domain.PostRecord
	At      time.Time
	Replace bool
}

// PostsLoadFailed is emitted when a load-all fails.
type PostsLoadFailed struct {
	Message string
}

func (PostsLoadPending) Type() string { return typeFetchPosts + "/pending" }
func (PostsLoaded) Type() string      { return typeFetchPosts + "/fulfilled" }
func (PostsLoadFailed) Type() string  { return typeFetchPosts + "/rejected" }

// --- posts: create family ---

// PostCreatePending is emitted when a remote create starts.
type PostCreatePending struct {
	Draft domain.Draft
}

// PostCreated carries the record echoed by a successful remote create.
type PostCreated struct {
	Record domain.PostRecord
	At     time.Time
}

// PostCreateFailed is emitted when a remote create fails.
type PostCreateFailed struct {
	Message string
	Err     error
}

func (PostCreatePending) Type() string { return typeAddNewPost + "/pending" }
func (PostCreated) Type() string       { return typeAddNewPost + "/fulfilled" }
func (PostCreateFailed) Type() string  { return typeAddNewPost + "/rejected" }

// --- posts: local events ---

// ReactionAdded bumps one reaction counter on one post.
type ReactionAdded struct {
	PostID   string
	Reaction domain.Reaction
}

// PostAdded appends a fully formed post. Build it with PreparePostAdded.
type PostAdded struct {
	Post domain.Post
}

func (ReactionAdded) Type() string { return "posts/reactionAdded" }
func (PostAdded) Type() string     { return "posts/postAdded" }

// --- users: load-all family ---

// UsersLoadPending is emitted when the user list fetch starts.
type UsersLoadPending struct{}

// UsersLoaded carries the fetched user list.
type UsersLoaded struct {
	Users []domain.User
}

// UsersLoadFailed is emitted when the user list fetch fails.
type UsersLoadFailed struct {
	Message string
}

func (UsersLoadPending) Type() string { return typeFetchUsers + "/pending" }
func (UsersLoaded) Type() string      { return typeFetchUsers + "/fulfilled" }
func (UsersLoadFailed) Type() string  { return typeFetchUsers + "/rejected" }
