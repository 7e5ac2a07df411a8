package importer

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/qforge/exambank/internal/entity"
	"github.com/qforge/exambank/internal/extract"
)

// batchSchema gates out-of-band import payloads (extraction done by a human
// or another tool) before decoding. Same JSON shape as pipeline output.
const batchSchemaJSON = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["stem", "options"],
    "additionalProperties": false,
    "properties": {
      "stem": {"type": "string"},
      "explanation": {"type": ["string", "null"]},
      "difficulty": {"enum": ["EASY", "MEDIUM", "HARD"]},
      "year_appeared": {"type": ["integer", "null"]},
      "is_previous_year": {"type": "boolean"},
      "subject": {"type": ["string", "null"]},
      "subject_id": {"type": ["string", "null"]},
      "tag_names": {"type": "array", "items": {"type": "string"}},
      "options": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["text", "is_correct"],
          "additionalProperties": false,
          "properties": {
            "text": {"type": "string"},
            "is_correct": {"type": "boolean"},
            "order": {"type": "integer", "minimum": 0}
          }
        }
      }
    }
  }
}`

// compiled once at init per the static-pattern-table rule
var batchSchema = jsonschema.MustCompileString("questions.json", batchSchemaJSON)

// DecodeBatch validates raw JSON against the batch schema and decodes it.
// Records without a difficulty get one estimated from their stem.
func DecodeBatch(raw []byte) ([]entity.ExtractedQuestion, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	if err := batchSchema.Validate(v); err != nil {
		return nil, fmt.Errorf("batch does not match schema: %w", err)
	}

	var batch []entity.ExtractedQuestion
	if err := json.Unmarshal(raw, &batch); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	for i := range batch {
		if batch[i].Difficulty == "" {
			batch[i].Difficulty = extract.EstimateDifficulty(batch[i].Stem)
		}
	}
	return batch, nil
}
