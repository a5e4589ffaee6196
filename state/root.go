package state

// Root is the whole application state.
type Root struct {
	Posts PostsState
	Users UsersState
}

// Reduce returns the state after applying ev. r is never modified.
func Reduce(r Root, ev Event) Root {
	r.Posts = reducePosts(r.Posts, ev)
	r.Users = reduceUsers(r.Users, ev)
	return r
}
