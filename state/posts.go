package state

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/CrestNiraj12/postdeck/app"
	"github.com/CrestNiraj12/postdeck/domain"
)

// PostsState is the posts slice.
type PostsState struct {
	Posts  []domain.Post
	Status Status
	Err    string // Set only while Status is StatusFailed
}

func reducePosts(s PostsState, ev Event) PostsState {
	switch ev := ev.(type) {
	case PostsLoadPending:
		s.Status = StatusLoading
		s.Err = ""

	case PostsLoaded:
		loaded := make([]domain.Post, 0, len(ev.Records))
		for i, rec := range ev.Records {
			p := fromRecord(rec)
			p.Date = ev.At.Add(-time.Duration(i+1) * time.Minute)
			loaded = append(loaded, p)
		}
		if ev.Replace {
			s.Posts = loaded
		} else {
			// Appends without de-duplicating against posts already held.
			s.Posts = append(slices.Clone(s.Posts), loaded...)
		}
		s.Status = StatusSucceeded
		s.Err = ""

	case PostsLoadFailed:
		s.Status = StatusFailed
		s.Err = ev.Message

	case PostCreated:
		p := fromRecord(ev.Record)
		p.Date = ev.At
		s.Posts = append(slices.Clone(s.Posts), p)

	case PostAdded:
		s.Posts = append(slices.Clone(s.Posts), ev.Post)

	case ReactionAdded:
		i := slices.IndexFunc(s.Posts, func(p domain.Post) bool { return p.ID == ev.PostID })
		if i < 0 || !ev.Reaction.Valid() {
			return s
		}
		posts := slices.Clone(s.Posts)
		posts[i].Reactions = posts[i].Reactions.Inc(ev.Reaction)
		s.Posts = posts
	}
	return s
}

// fromRecord converts a remote record into a post with zeroed reactions.
func fromRecord(rec domain.PostRecord) domain.Post {
	return domain.Post{
		ID:     rec.ID,
		Title:  rec.Title,
		Body:   rec.Body,
		UserID: normalizeUserID(rec.UserID),
	}
}

// normalizeUserID coerces a user id of either wire type to an int. Numeric
// forms such as "3.0" or "3e0" are accepted when they are whole numbers.
// Anything else becomes 0.
func normalizeUserID(raw string) int {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0
	}
	return int(f)
}

// PreparePostAdded builds a PostAdded event for a post that never touches the
// remote endpoint.
func PreparePostAdded(ids app.IDGenerator, clock app.Clock, title, content string, userID int) PostAdded {
	return PostAdded{Post: domain.Post{
		ID:     ids.NewID(),
		Title:  title,
		Body:   content,
		UserID: userID,
		Date:   clock(),
	}}
}
