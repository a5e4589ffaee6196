package domain

import "time"

// Reaction names one of the fixed reaction counters a post carries.
type Reaction int

const (
	ThumbsUp Reaction = iota
	Wow
	Heart
	Rocket
	Coffee

	reactionCount
)

// AllReactions lists every reaction in display order.
var AllReactions = [reactionCount]Reaction{ThumbsUp, Wow, Heart, Rocket, Coffee}

var reactionNames = [reactionCount]string{"thumbsUp", "wow", "heart", "rocket", "coffee"}

var reactionEmoji = [reactionCount]string{"👍", "😮", "❤️", "🚀", "☕"}

// String returns the wire name of the reaction (e.g. "thumbsUp").
func (r Reaction) String() string {
	if !r.Valid() {
		return "unknown"
	}
	return reactionNames[r]
}

// Emoji returns the glyph used when rendering the reaction.
func (r Reaction) Emoji() string {
	if !r.Valid() {
		return "?"
	}
	return reactionEmoji[r]
}

// Valid reports whether r is one of the known reactions.
func (r Reaction) Valid() bool {
	return r >= 0 && r < reactionCount
}

// ParseReaction resolves a wire name back to a Reaction.
func ParseReaction(name string) (Reaction, bool) {
	for i, n := range reactionNames {
		if n == name {
			return Reaction(i), true
		}
	}
	return 0, false
}

// Reactions holds one non-negative counter per reaction. It is a value type:
// copying a Post copies its counters.
type Reactions [reactionCount]int

// Count returns the counter for r, or 0 for an unknown reaction.
func (rs Reactions) Count(r Reaction) int {
	if !r.Valid() {
		return 0
	}
	return rs[r]
}

// Inc returns a copy with r incremented by one. Unknown reactions are ignored.
func (rs Reactions) Inc(r Reaction) Reactions {
	if r.Valid() {
		rs[r]++
	}
	return rs
}

// Post is a single post as held by the store.
type Post struct {
	ID        string // Opaque; remote numeric ids are kept as decimal strings
	Title     string
	Body      string
	UserID    int
	Date      time.Time
	Reactions Reactions
}

// PostRecord is a post as delivered by the remote collection endpoint,
// before the store stamps it. UserID is kept verbatim because the endpoint
// echoes whatever type it was sent.
type PostRecord struct {
	ID     string
	Title  string
	Body   string
	UserID string
}

// Draft is the payload for creating a post remotely.
type Draft struct {
	Title  string
	Body   string
	UserID string
}
