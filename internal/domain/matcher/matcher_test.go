package matcher_test

import (
	"testing"

	"github.com/sleiderink/skifinder/internal/domain/gradient"
	"github.com/sleiderink/skifinder/internal/domain/matcher"
	"github.com/sleiderink/skifinder/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func ski(desc string, price float64) model.Ski {
	return model.Ski{
		Description: desc,
		Brand:       "Atomic",
		Price:       price,
		Gender:      []string{"unisex"},
		Ability:     []string{"advanced"},
		Piste:       []string{"off-piste"},
		Speed:       []string{"fast"},
		Turns:       []string{"short"},
	}
}

func TestScore(t *testing.T) {
	Convey("Given a fully tagged ski", t, func() {
		s := ski("all-mountain", 650)

		Convey("When no preferences are set", func() {
			Convey("Then the score is 0", func() {
				So(matcher.Score(s, model.Preferences{}), ShouldEqual, 0)
			})
		})

		Convey("When preferences are added one dimension at a time", func() {
			prefs := model.Preferences{}
			prev := matcher.Score(s, prefs)

			Convey("Then the score never decreases and ends at 5", func() {
				prefs.Ability = "advanced"
				next := matcher.Score(s, prefs)
				So(next, ShouldBeGreaterThanOrEqualTo, prev)
				prev = next

				prefs.Piste = "off-piste"
				next = matcher.Score(s, prefs)
				So(next, ShouldBeGreaterThanOrEqualTo, prev)
				prev = next

				prefs.Speed = "fast"
				next = matcher.Score(s, prefs)
				So(next, ShouldBeGreaterThanOrEqualTo, prev)
				prev = next

				prefs.Turns = "short"
				next = matcher.Score(s, prefs)
				So(next, ShouldBeGreaterThanOrEqualTo, prev)
				prev = next

				prefs.Price = &model.PriceRange{Min: 500, Max: 800}
				next = matcher.Score(s, prefs)
				So(next, ShouldBeGreaterThanOrEqualTo, prev)
				So(next, ShouldEqual, matcher.MaxScore)
			})
		})

		Convey("When tags carry odd casing and whitespace", func() {
			s.Ability = []string{" Advanced "}

			Convey("Then comparison is case- and whitespace-insensitive", func() {
				clean := matcher.Score(ski("clean", 650), model.Preferences{Ability: "advanced"})
				messy := matcher.Score(s, model.Preferences{Ability: "advanced"})
				So(messy, ShouldEqual, clean)
				So(messy, ShouldEqual, 1)
			})
		})

		Convey("When a dimension holds multiple tags", func() {
			s.Piste = []string{"piste", "off-piste"}

			Convey("Then any matching element scores the dimension", func() {
				So(matcher.Score(s, model.Preferences{Piste: "off-piste"}), ShouldEqual, 1)
			})

			Convey("And no element matching scores nothing", func() {
				So(matcher.Score(s, model.Preferences{Piste: "park"}), ShouldEqual, 0)
			})
		})

		Convey("When a price range is set", func() {
			Convey("Then a price inside the range scores", func() {
				So(matcher.Score(s, model.Preferences{Price: &model.PriceRange{Min: 500, Max: 800}}), ShouldEqual, 1)
			})

			Convey("And the bounds are inclusive", func() {
				So(matcher.Score(s, model.Preferences{Price: &model.PriceRange{Min: 650, Max: 650}}), ShouldEqual, 1)
			})

			Convey("And a price outside the range does not score", func() {
				So(matcher.Score(s, model.Preferences{Price: &model.PriceRange{Min: 100, Max: 200}}), ShouldEqual, 0)
			})
		})
	})
}

func TestRank(t *testing.T) {
	Convey("Given a matcher with default configuration", t, func() {
		m := matcher.New()

		Convey("When ranking an empty catalog", func() {
			got := m.Rank(nil, model.Preferences{Gender: "unisex", Height: 180})

			Convey("Then the result is empty and no error occurs", func() {
				So(got, ShouldBeEmpty)
			})
		})

		Convey("When ranking the worked single-item example", func() {
			catalog := []model.Ski{{
				Description: "Backland 85",
				Brand:       "Atomic",
				Price:       650,
				Gender:      []string{"unisex"},
				Ability:     []string{"advanced"},
				Piste:       []string{"off-piste"},
			}}
			prefs := model.Preferences{
				Gender:  "unisex",
				Ability: "advanced",
				Piste:   "off-piste",
				Price:   &model.PriceRange{Min: 500, Max: 800},
				Height:  180,
			}
			got := m.Rank(catalog, prefs)

			Convey("Then the item scores 4 at 80 percent", func() {
				So(got, ShouldHaveLength, 1)
				So(got[0].Score, ShouldEqual, 4)
				So(got[0].MatchPercent, ShouldEqual, 80)
				So(got[0].Description, ShouldEqual, "Backland 85")
			})

			Convey("And flipping gender to male excludes it entirely", func() {
				prefs.Gender = "male"
				So(m.Rank(catalog, prefs), ShouldBeEmpty)
			})
		})

		Convey("When a high-scoring item mismatches on gender", func() {
			catalog := []model.Ski{
				{Description: "womens", Gender: []string{"female"}, Ability: []string{"advanced"}, Piste: []string{"piste"}, Speed: []string{"fast"}, Turns: []string{"short"}},
				{Description: "mens", Gender: []string{"male"}},
			}
			got := m.Rank(catalog, model.Preferences{Gender: "male", Ability: "advanced"})

			Convey("Then the hard filter beats any soft score", func() {
				So(got, ShouldHaveLength, 1)
				So(got[0].Description, ShouldEqual, "mens")
			})
		})

		Convey("When items share a score", func() {
			catalog := []model.Ski{
				ski("first", 650),
				ski("second", 650),
				ski("third", 650),
			}
			got := m.Rank(catalog, model.Preferences{Gender: "unisex", Ability: "advanced"})

			Convey("Then catalog order is preserved for ties", func() {
				So(got, ShouldHaveLength, 3)
				So(got[0].Description, ShouldEqual, "first")
				So(got[1].Description, ShouldEqual, "second")
				So(got[2].Description, ShouldEqual, "third")
			})
		})

		Convey("When scores differ", func() {
			weak := ski("weak", 650)
			weak.Ability = []string{"beginner"}
			weak.Speed = []string{"slow"}
			catalog := []model.Ski{weak, ski("strong", 650)}
			got := m.Rank(catalog, model.Preferences{Gender: "unisex", Ability: "advanced", Speed: "fast"})

			Convey("Then higher scores rank first", func() {
				So(got, ShouldHaveLength, 2)
				So(got[0].Description, ShouldEqual, "strong")
				So(got[0].Score, ShouldEqual, 2)
				So(got[1].Description, ShouldEqual, "weak")
				So(got[1].Score, ShouldEqual, 0)
			})
		})

		Convey("When more than three items qualify", func() {
			catalog := []model.Ski{
				ski("a", 650), ski("b", 650), ski("c", 650), ski("d", 650), ski("e", 650),
			}
			got := m.Rank(catalog, model.Preferences{Gender: "unisex"})

			Convey("Then the result is truncated to three", func() {
				So(got, ShouldHaveLength, 3)
			})
		})

		Convey("When a price range is set", func() {
			cheap := ski("cheap", 300)
			pricey := ski("pricey", 900)
			inRange := ski("in-range", 650)
			got := m.Rank([]model.Ski{cheap, pricey, inRange}, model.Preferences{
				Gender: "unisex",
				Price:  &model.PriceRange{Min: 500, Max: 800},
			})

			Convey("Then overpriced items are excluded but underpriced ones stay", func() {
				So(got, ShouldHaveLength, 2)
				So(got[0].Description, ShouldEqual, "in-range")
				So(got[0].Score, ShouldEqual, 1)
				So(got[1].Description, ShouldEqual, "cheap")
				So(got[1].Score, ShouldEqual, 0)
			})
		})

		Convey("When no gender preference is set", func() {
			got := m.Rank([]model.Ski{ski("any", 650)}, model.Preferences{})

			Convey("Then the gender filter is skipped", func() {
				So(got, ShouldHaveLength, 1)
			})
		})

		Convey("When computing the match color", func() {
			got := m.Rank([]model.Ski{{Description: "blank", Gender: []string{"unisex"}}}, model.Preferences{Gender: "unisex"})

			Convey("Then a zero score renders the low gradient endpoint", func() {
				So(got, ShouldHaveLength, 1)
				So(got[0].MatchPercent, ShouldEqual, 0)
				So(got[0].Color, ShouldEqual, "rgb(245,158,11)")
			})

			full := m.Rank([]model.Ski{ski("full", 650)}, model.Preferences{
				Gender: "unisex", Ability: "advanced", Piste: "off-piste",
				Speed: "fast", Turns: "short",
				Price: &model.PriceRange{Min: 500, Max: 800},
			})

			Convey("And a perfect score renders the high endpoint", func() {
				So(full, ShouldHaveLength, 1)
				So(full[0].Score, ShouldEqual, 5)
				So(full[0].MatchPercent, ShouldEqual, 100)
				So(full[0].Color, ShouldEqual, "rgb(16,185,129)")
			})
		})
	})

	Convey("Given a matcher with custom options", t, func() {
		Convey("When the limit is raised", func() {
			m := matcher.New(matcher.WithLimit(5))
			catalog := []model.Ski{
				ski("a", 1), ski("b", 1), ski("c", 1), ski("d", 1), ski("e", 1), ski("f", 1),
			}

			Convey("Then up to five results come back", func() {
				So(m.Rank(catalog, model.Preferences{Gender: "unisex"}), ShouldHaveLength, 5)
			})
		})

		Convey("When a custom gradient is configured", func() {
			m := matcher.New(matcher.WithGradient(
				gradient.RGB{R: 255, G: 0, B: 0},
				gradient.RGB{R: 0, G: 255, B: 0},
			))
			got := m.Rank([]model.Ski{{Description: "blank", Gender: []string{"unisex"}}}, model.Preferences{Gender: "unisex"})

			Convey("Then the configured low color is used", func() {
				So(got, ShouldHaveLength, 1)
				So(got[0].Color, ShouldEqual, "rgb(255,0,0)")
			})
		})
	})
}

func TestMatchPercent(t *testing.T) {
	Convey("Given the score-to-percent conversion", t, func() {
		Convey("Then every score maps to its rounded percentage", func() {
			So(matcher.MatchPercent(0), ShouldEqual, 0)
			So(matcher.MatchPercent(1), ShouldEqual, 20)
			So(matcher.MatchPercent(2), ShouldEqual, 40)
			So(matcher.MatchPercent(3), ShouldEqual, 60)
			So(matcher.MatchPercent(4), ShouldEqual, 80)
			So(matcher.MatchPercent(5), ShouldEqual, 100)
		})
	})
}

func TestRecommendedLength(t *testing.T) {
	Convey("Given a rider height", t, func() {
		Convey("Then the recommended length is height minus 15", func() {
			So(matcher.RecommendedLength(180), ShouldEqual, 165)
			So(matcher.RecommendedLength(100), ShouldEqual, 85)
			So(matcher.RecommendedLength(220), ShouldEqual, 205)
		})
	})
}
