package catalog

import (
	"strconv"
	"strings"

	"github.com/sleiderink/skifinder/internal/domain/model"
)

// Column names in the upstream Ski Finder table. Both backends expose
// the same names: Airtable natively, Baserow via user_field_names.
const (
	fieldDescription = "Artikelomschrijving"
	fieldBrand       = "Fabrikant"
	fieldImageURL    = "Url image"
	fieldProductURL  = "Url"
	fieldPrice       = "Verkoopprijs"
	fieldGender      = "Gender"
	fieldAbility     = "Ability"
	fieldPiste       = "Piste"
	fieldSpeed       = "Snelheid"
	fieldTurns       = "Bochten"
)

// normalizeRecord maps one raw field-mapping into the canonical Ski.
// Missing or oddly typed fields degrade to zero values field by field;
// a malformed record never aborts the fetch.
func normalizeRecord(fields map[string]any) model.Ski {
	return model.Ski{
		Description: asString(fields[fieldDescription]),
		Brand:       asString(fields[fieldBrand]),
		ImageURL:    asString(fields[fieldImageURL]),
		ProductURL:  asString(fields[fieldProductURL]),
		Price:       asFloat(fields[fieldPrice]),
		Gender:      asTags(fields[fieldGender]),
		Ability:     asTags(fields[fieldAbility]),
		Piste:       asTags(fields[fieldPiste]),
		Speed:       asTags(fields[fieldSpeed]),
		Turns:       asTags(fields[fieldTurns]),
	}
}

func asString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// asFloat accepts the numeric encodings the two backends produce:
// plain JSON numbers from Airtable, decimal strings from Baserow
// number columns.
func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// asTags accepts a single value or a list. Single select columns come
// through as strings, multi selects as arrays; Baserow wraps select
// options in objects with a "value" key.
func asTags(v any) []string {
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
		return nil
	case []any:
		tags := make([]string, 0, len(t))
		for _, el := range t {
			switch e := el.(type) {
			case string:
				if s := strings.TrimSpace(e); s != "" {
					tags = append(tags, s)
				}
			case map[string]any:
				if s := asString(e["value"]); s != "" {
					tags = append(tags, s)
				}
			}
		}
		if len(tags) == 0 {
			return nil
		}
		return tags
	case map[string]any:
		if s := asString(t["value"]); s != "" {
			return []string{s}
		}
		return nil
	default:
		return nil
	}
}
