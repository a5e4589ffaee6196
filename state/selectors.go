package state

import "github.com/CrestNiraj12/postdeck/domain"

// SelectAllPosts returns the posts in insertion order.
func SelectAllPosts(r Root) []domain.Post { return r.Posts.Posts }

// SelectPostsStatus returns the lifecycle status of the posts slice.
func SelectPostsStatus(r Root) Status { return r.Posts.Status }

// SelectPostsError returns the last load failure, or "".
func SelectPostsError(r Root) string { return r.Posts.Err }

// SelectAllUsers returns the fetched authors.
func SelectAllUsers(r Root) []domain.User { return r.Users.Users }

// SelectUsersStatus returns the lifecycle status of the users slice.
func SelectUsersStatus(r Root) Status { return r.Users.Status }

// SelectPostByID returns the post with the given id, if present.
func SelectPostByID(r Root, id string) (domain.Post, bool) {
	for _, p := range r.Posts.Posts {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Post{}, false
}

// SelectUserByID returns the user with the given id, if present.
func SelectUserByID(r Root, id int) (domain.User, bool) {
	for _, u := range r.Users.Users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}
