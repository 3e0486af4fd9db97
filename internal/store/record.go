package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/schema"
)

// RecordVersion is the current on-disk record format.
const RecordVersion = 1

// Record is the persisted result of one completed assessment.
type Record struct {
	Version     int               `json:"version"`
	AttemptID   string            `json:"attemptId"`
	CompletedAt time.Time         `json:"completedAt"`
	Answers     catalog.AnswerMap `json:"answers"`
}

// RecordSchema describes a stored Record.
var RecordSchema = &schema.Schema{
	Name:        "answer-record",
	Description: "Completed assessment answers keyed by section and question index",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"version":     map[string]any{"type": "integer", "const": RecordVersion},
			"attemptId":   map[string]any{"type": "string", "minLength": 1},
			"completedAt": map[string]any{"type": "string", "minLength": 1},
			"answers": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string"},
			},
		},
		"required": []any{"version", "attemptId", "completedAt", "answers"},
	},
}

// EncodeRecord serializes a record.
func EncodeRecord(r *Record) ([]byte, error) {
	return json.Marshal(r)
}

// DecodeRecord validates and parses a stored record. Schema violations and
// malformed JSON are reported as *schema.ErrInvalidDocument.
func DecodeRecord(raw []byte) (*Record, error) {
	if err := schema.Validate(RecordSchema, raw); err != nil {
		return nil, err
	}
	var r Record
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, &schema.ErrInvalidDocument{
			Schema:  RecordSchema.Name,
			Content: raw,
			Err:     fmt.Errorf("decode record: %w", err),
		}
	}
	if r.Answers == nil {
		r.Answers = make(catalog.AnswerMap)
	}
	return &r, nil
}
