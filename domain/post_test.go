package domain

import (
	"errors"
	"testing"
)

func TestReactions_IncIsCopyOnWrite(t *testing.T) {
	var rs Reactions
	next := rs.Inc(Rocket).Inc(Rocket)
	if rs.Count(Rocket) != 0 {
		t.Fatalf("original counters must not change")
	}
	if next.Count(Rocket) != 2 {
		t.Fatalf("expected 2 rockets, got %d", next.Count(Rocket))
	}
	if got := next.Inc(Reaction(42)); got != next {
		t.Fatalf("unknown reaction should be ignored")
	}
}

func TestParseReaction(t *testing.T) {
	for _, r := range AllReactions {
		got, ok := ParseReaction(r.String())
		if !ok || got != r {
			t.Fatalf("round trip failed for %v", r)
		}
	}
	if _, ok := ParseReaction("sad"); ok {
		t.Fatalf("unexpected reaction parsed")
	}
}

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		want  error
	}{
		{name: "ok", draft: Draft{Title: "t", Body: "b", UserID: "1"}},
		{name: "no title", draft: Draft{Body: "b", UserID: "1"}, want: ErrEmptyTitle},
		{name: "no body", draft: Draft{Title: "t", UserID: "1"}, want: ErrEmptyBody},
		{name: "no author", draft: Draft{Title: "t", Body: "b"}, want: ErrNoAuthor},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDraft(tc.draft)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v want %v", err, tc.want)
			}
			if tc.want != nil && !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error class: %v", err)
			}
		})
	}
}

func TestTransportError(t *testing.T) {
	inner := errors.New("connection refused")
	err := error(&TransportError{Op: "GET /posts", Err: inner})
	if !IsTransport(err) || !errors.Is(err, inner) {
		t.Fatalf("expected transport error wrapping inner")
	}
	if err.Error() != "GET /posts: connection refused" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	withStatus := &TransportError{Op: "POST /posts", Status: 500, Err: errors.New("boom")}
	if withStatus.Error() != "POST /posts: status 500: boom" {
		t.Fatalf("unexpected message: %q", withStatus.Error())
	}
}
