package catalog

import "github.com/abhisek/careerfit/internal/schema"

var optionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"value": map[string]any{"type": "string", "minLength": 1},
		"text":  map[string]any{"type": "string", "minLength": 1},
		"score": map[string]any{"type": "integer", "minimum": MinScore, "maximum": MaxScore},
	},
	"required":             []any{"value", "text"},
	"additionalProperties": false,
}

var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":       map[string]any{"type": "string", "minLength": 1},
		"prompt":   map[string]any{"type": "string", "minLength": 1},
		"category": map[string]any{"type": "string"},
		"type": map[string]any{
			"type": "string",
			"enum": []any{
				string(TypeInterest), string(TypePersonality), string(TypeCognitive), string(TypeMotivation),
				string(TypeLogical), string(TypeNumerical), string(TypeProgramming), string(TypeDomain),
			},
		},
		"options": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items":    optionSchema,
		},
	},
	"required":             []any{"id", "prompt", "category", "type", "options"},
	"additionalProperties": false,
}

// CatalogSchema describes the on-disk question catalog.
var CatalogSchema = &schema.Schema{
	Name:        "question-catalog",
	Description: "Psychometric and technical question lists with scored options",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"psychometric": map[string]any{"type": "array", "minItems": 1, "items": questionSchema},
			"technical":    map[string]any{"type": "array", "minItems": 1, "items": questionSchema},
		},
		"required":             []any{"psychometric", "technical"},
		"additionalProperties": false,
	},
}
