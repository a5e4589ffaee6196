package state

import (
	"slices"

	"github.com/CrestNiraj12/postdeck/domain"
)

// UsersState is the users slice.
type UsersState struct {
	Users  []domain.User
	Status Status
	Err    string
}

func reduceUsers(s UsersState, ev Event) UsersState {
	switch ev := ev.(type) {
	case UsersLoadPending:
		s.Status = StatusLoading
		s.Err = ""
	case UsersLoaded:
		s.Users = slices.Clone(ev.Users)
		s.Status = StatusSucceeded
		s.Err = ""
	case UsersLoadFailed:
		s.Status = StatusFailed
		s.Err = ev.Message
	}
	return s
}
