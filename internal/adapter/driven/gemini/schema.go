package gemini

import (
	"google.golang.org/genai"

	"github.com/ericfisherdev/nichescript/internal/domain/model"
)

func scoreSchema(description string) *genai.Schema {
	lo, hi := float64(model.MinScore), float64(model.MaxScore)
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: description,
		Properties: map[string]*genai.Schema{
			"score":       {Type: genai.TypeInteger, Minimum: &lo, Maximum: &hi},
			"explanation": {Type: genai.TypeString},
		},
		Required: []string{"score", "explanation"},
	}
}

func nicheProperties(extended bool) (map[string]*genai.Schema, []string) {
	props := map[string]*genai.Schema{
		"title":       {Type: genai.TypeString},
		"description": {Type: genai.TypeString},
	}
	required := []string{"title", "description"}
	if !extended {
		return props, required
	}

	props["monetization_potential"] = scoreSchema("Higher is better.")
	props["audience_potential"] = scoreSchema("Higher is better.")
	props["competition_level"] = scoreSchema("Higher means more saturated, which is worse.")
	props["content_direction"] = &genai.Schema{Type: genai.TypeString}
	props["keywords"] = &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}
	required = append(required,
		"monetization_potential", "audience_potential", "competition_level",
		"content_direction", "keywords")
	return props, required
}

// schemaFor maps a response shape to a genai schema. Text has no schema.
func schemaFor(shape model.ResponseShape) *genai.Schema {
	var extended bool
	switch shape {
	case model.ShapeNicheListBasic:
	case model.ShapeNicheListExtended:
		extended = true
	default:
		return nil
	}

	props, required := nicheProperties(extended)
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: props,
			Required:   required,
		},
	}
}
