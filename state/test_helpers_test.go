package state

import (
	"context"
	"fmt"
	"time"

	"github.com/CrestNiraj12/postdeck/domain"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type stubPosts struct {
	records []domain.PostRecord
	created domain.PostRecord
	err     error
	drafts  []domain.Draft
}

func (s *stubPosts) FetchAll(context.Context) ([]domain.PostRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func (s *stubPosts) Create(_ context.Context, d domain.Draft) (domain.PostRecord, error) {
	s.drafts = append(s.drafts, d)
	if s.err != nil {
		return domain.PostRecord{}, s.err
	}
	return s.created, nil
}

type stubUsers struct {
	users []domain.User
	err   error
}

func (s stubUsers) FetchAll(context.Context) ([]domain.User, error) {
	return s.users, s.err
}

type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("local-%d", g.n)
}

func seededPosts(ids ...string) Root {
	var r Root
	recs := make([]domain.PostRecord, 0, len(ids))
	for _, id := range ids {
		recs = append(recs, domain.PostRecord{ID: id, Title: "t" + id, Body: "b" + id, UserID: "1"})
	}
	return Reduce(r, PostsLoaded{Records: recs, At: fixedNow})
}
