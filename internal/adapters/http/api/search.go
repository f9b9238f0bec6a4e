// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	app "github.com/sleiderink/skifinder/internal/app"
	"github.com/sleiderink/skifinder/internal/domain/model"
)

// searchRequest mirrors the wizard's answer set. Everything but height
// is optional; an empty string leaves that dimension unscored. Price
// arrives as a "min-max" string, the way the wizard buttons encode it.
type searchRequest struct {
	Gender  string `json:"gender"`
	Ability string `json:"ability"`
	Piste   string `json:"piste"`
	Speed   string `json:"speed"`
	Turns   string `json:"turns"`
	Price   string `json:"price"`
	Height  int    `json:"height" validate:"required,gte=100,lte=220"`
}

var validate = validator.New()

// toPreferences validates the request and converts it to the domain
// shape.
func (r searchRequest) toPreferences() (model.Preferences, error) {
	if err := validate.Struct(r); err != nil {
		return model.Preferences{}, fmt.Errorf("height must be between %d and %d cm: %w",
			model.MinHeight, model.MaxHeight, err)
	}
	prefs := model.Preferences{
		Gender:  strings.TrimSpace(r.Gender),
		Ability: strings.TrimSpace(r.Ability),
		Piste:   strings.TrimSpace(r.Piste),
		Speed:   strings.TrimSpace(r.Speed),
		Turns:   strings.TrimSpace(r.Turns),
		Height:  r.Height,
	}
	if p := strings.TrimSpace(r.Price); p != "" {
		rng, err := parsePriceRange(p)
		if err != nil {
			return model.Preferences{}, err
		}
		prefs.Price = &rng
	}
	return prefs, nil
}

// parsePriceRange parses "min-max" into a closed range. Prices are
// non-negative, so the first dash is always the separator; a leading
// dash therefore reads as an empty minimum and is rejected.
func parsePriceRange(s string) (model.PriceRange, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return model.PriceRange{}, fmt.Errorf("%w: %q", ErrBadPrice, s)
	}
	minPrice, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return model.PriceRange{}, fmt.Errorf("%w: %q", ErrBadPrice, s)
	}
	maxPrice, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return model.PriceRange{}, fmt.Errorf("%w: %q", ErrBadPrice, s)
	}
	if maxPrice < minPrice {
		return model.PriceRange{}, fmt.Errorf("%w: %q", ErrBadPrice, s)
	}
	return model.PriceRange{Min: minPrice, Max: maxPrice}, nil
}

// SearchHandler handles search requests.
type SearchHandler struct {
	deps Dependencies
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps Dependencies) *SearchHandler {
	return &SearchHandler{deps: deps}
}

// HandlePostSearch handles POST /api/search requests. Height is
// validated before any upstream call; an empty match list is a normal
// 200, not an error.
func (h *SearchHandler) HandlePostSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	prefs, err := req.toPreferences()
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	result, err := h.deps.Search(r.Context(), prefs)
	if err != nil {
		if errors.Is(err, app.ErrFetchTimeout) {
			writeError(w, http.StatusGatewayTimeout, "upstream_timeout", err)
			return
		}
		writeError(w, http.StatusBadGateway, "upstream_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
