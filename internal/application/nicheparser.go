package application

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/ericfisherdev/nichescript/internal/domain/model"
)

// ParseNiches decodes and checks a provider's niche list. Every element must
// carry every field the shape requires; a single bad element rejects the
// whole payload. Failures wrap ErrInvalidFormat.
func ParseNiches(raw string, shape model.ResponseShape) ([]model.AnalyzedNiche, error) {
	var elems []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if elems == nil {
		return nil, fmt.Errorf("%w: expected a JSON array, got null", ErrInvalidFormat)
	}

	extended := shape == model.ShapeNicheListExtended
	out := make([]model.AnalyzedNiche, 0, len(elems))
	for i, elem := range elems {
		n, err := parseNiche(elem, extended)
		if err != nil {
			return nil, fmt.Errorf("%w: niche %d: %v", ErrInvalidFormat, i, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func parseNiche(elem map[string]json.RawMessage, extended bool) (model.AnalyzedNiche, error) {
	if elem == nil {
		return model.AnalyzedNiche{}, fmt.Errorf("not an object")
	}

	var n model.AnalyzedNiche
	if err := requireString(elem, "title", &n.Title); err != nil {
		return n, err
	}
	if err := requireString(elem, "description", &n.Description); err != nil {
		return n, err
	}
	if !extended {
		return n, nil
	}

	scores := []struct {
		field string
		dst   *model.Score
	}{
		{"monetization_potential", &n.MonetizationPotential},
		{"audience_potential", &n.AudiencePotential},
		{"competition_level", &n.CompetitionLevel},
	}
	for _, s := range scores {
		if err := requireScore(elem, s.field, s.dst); err != nil {
			return n, err
		}
	}
	if err := requireString(elem, "content_direction", &n.ContentDirection); err != nil {
		return n, err
	}

	kw, ok := elem["keywords"]
	if !ok {
		return n, fmt.Errorf("missing keywords")
	}
	if err := json.Unmarshal(kw, &n.Keywords); err != nil || n.Keywords == nil {
		return n, fmt.Errorf("keywords must be an array of strings")
	}
	return n, nil
}

func requireString(elem map[string]json.RawMessage, field string, dst *string) error {
	v, ok := elem[field]
	if !ok {
		return fmt.Errorf("missing %s", field)
	}
	if err := json.Unmarshal(v, dst); err != nil || string(v) == "null" {
		return fmt.Errorf("%s must be a string", field)
	}
	return nil
}

func requireScore(elem map[string]json.RawMessage, field string, dst *model.Score) error {
	v, ok := elem[field]
	if !ok {
		return fmt.Errorf("missing %s", field)
	}

	var obj struct {
		Score       *float64 `json:"score"`
		Explanation *string  `json:"explanation"`
	}
	if err := json.Unmarshal(v, &obj); err != nil || string(v) == "null" {
		return fmt.Errorf("%s must be an object", field)
	}
	if obj.Score == nil {
		return fmt.Errorf("%s.score missing", field)
	}
	f := *obj.Score
	if f != math.Trunc(f) || f < model.MinScore || f > model.MaxScore {
		return fmt.Errorf("%s.score %v is not an integer in [%d,%d]", field, f, model.MinScore, model.MaxScore)
	}

	dst.Score = int(f)
	if obj.Explanation != nil {
		dst.Explanation = *obj.Explanation
	}
	return nil
}
