// Package matcher ranks a ski catalog against wizard preferences.
package matcher

import (
	"math"
	"sort"
	"strings"

	"github.com/sleiderink/skifinder/internal/domain/gradient"
	"github.com/sleiderink/skifinder/internal/domain/model"
	"github.com/sleiderink/skifinder/internal/domain/types"
)

// Default ranking configuration constants.
const (
	defaultLimit = 3

	// MaxScore is the highest attainable relevance score: four tag
	// dimensions plus the price dimension.
	MaxScore = 5

	// lengthOffset is subtracted from rider height to get the
	// recommended ski length in centimeters.
	lengthOffset = 15

	percentScale = 100
)

// Default gradient endpoints for the match color: amber at 0 %,
// emerald at 100 %.
var (
	defaultLowColor  = gradient.RGB{R: 245, G: 158, B: 11}
	defaultHighColor = gradient.RGB{R: 16, G: 185, B: 129}
)

// Option applies a configuration option to the Matcher.
type Option func(*Matcher)

// WithLimit caps the number of ranked results returned.
func WithLimit(limit int) Option {
	return func(m *Matcher) {
		if limit > 0 {
			m.limit = limit
		}
	}
}

// WithGradient sets the colors used for 0 % and 100 % matches.
func WithGradient(low, high gradient.RGB) Option {
	return func(m *Matcher) {
		m.low = low
		m.high = high
	}
}

// dimension pairs a preference accessor with the catalog tags it is
// compared against. Scoring is a reduction over a fixed list of these
// instead of a chain of ad-hoc conditionals, so adding a dimension is
// one table entry.
type dimension struct {
	name string
	pref func(model.Preferences) string
	tags func(model.Ski) []string
}

// dimensions lists the soft scoring dimensions. Gender is absent on
// purpose: it is a hard filter, not a score contributor.
var dimensions = []dimension{
	{
		name: "ability",
		pref: func(p model.Preferences) string { return p.Ability },
		tags: func(s model.Ski) []string { return s.Ability },
	},
	{
		name: "piste",
		pref: func(p model.Preferences) string { return p.Piste },
		tags: func(s model.Ski) []string { return s.Piste },
	},
	{
		name: "speed",
		pref: func(p model.Preferences) string { return p.Speed },
		tags: func(s model.Ski) []string { return s.Speed },
	},
	{
		name: "turns",
		pref: func(p model.Preferences) string { return p.Turns },
		tags: func(s model.Ski) []string { return s.Turns },
	},
}

// Matcher scores, filters, sorts and truncates a catalog. It performs
// no I/O and keeps no state between calls.
type Matcher struct {
	limit int
	low   gradient.RGB
	high  gradient.RGB
}

// New creates a Matcher with default configuration.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		limit: defaultLimit,
		low:   defaultLowColor,
		high:  defaultHighColor,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Rank orders the catalog by relevance to prefs and returns at most
// the configured limit of results.
//
// Each item scores one point per set-and-matching tag dimension and
// one point when its price falls inside the preferred range. Items
// whose gender tags do not match a set gender preference are dropped, as
// are items priced above the range maximum. The lower price bound only
// scores, it never filters: an underpriced ski is still a valid match.
// Ties keep their original catalog order.
func (m *Matcher) Rank(catalog []model.Ski, prefs model.Preferences) []types.Match {
	type scored struct {
		ski   model.Ski
		score int
	}

	ranked := make([]scored, 0, len(catalog))
	for _, ski := range catalog {
		if prefs.Gender != "" && !tagsMatch(ski.Gender, prefs.Gender) {
			continue
		}
		if prefs.Price != nil && ski.Price > prefs.Price.Max {
			continue
		}
		ranked = append(ranked, scored{ski: ski, score: Score(ski, prefs)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > m.limit {
		ranked = ranked[:m.limit]
	}

	matches := make([]types.Match, 0, len(ranked))
	for _, r := range ranked {
		percent := MatchPercent(r.score)
		matches = append(matches, types.Match{
			Description:  r.ski.Description,
			Brand:        r.ski.Brand,
			ImageURL:     r.ski.ImageURL,
			ProductURL:   r.ski.ProductURL,
			Price:        r.ski.Price,
			Score:        r.score,
			MatchPercent: percent,
			Color:        gradient.Interpolate(m.low, m.high, float64(percent)/percentScale).String(),
		})
	}
	return matches
}

// Score computes the relevance score of a single ski. Unset preference
// dimensions contribute nothing, so the score is monotonically
// non-decreasing as more dimensions are filled in.
func Score(ski model.Ski, prefs model.Preferences) int {
	score := 0
	for _, d := range dimensions {
		if want := d.pref(prefs); want != "" && tagsMatch(d.tags(ski), want) {
			score++
		}
	}
	if prefs.Price != nil && prefs.Price.Contains(ski.Price) {
		score++
	}
	return score
}

// MatchPercent converts a relevance score to a display percentage.
func MatchPercent(score int) int {
	return int(math.Round(float64(score) / MaxScore * percentScale))
}

// RecommendedLength returns the advised ski length for a rider height,
// both in centimeters. It does not depend on the catalog.
func RecommendedLength(height int) int {
	return height - lengthOffset
}

// tagsMatch reports whether any tag equals want after normalization.
// Comparison is case-insensitive and ignores surrounding whitespace.
func tagsMatch(tags []string, want string) bool {
	want = normalize(want)
	for _, tag := range tags {
		if normalize(tag) == want {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
