package bank

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/prepmate/prepmate/internal/taxonomy"
)

// itemSchema is the JSON Schema a bank snapshot file must conform to.
var itemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":         map[string]any{"type": "string", "minLength": 1},
					"skill_id":   map[string]any{"type": "string", "minLength": 1},
					"tier":       map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard", ""}},
					"score_band": map[string]any{"type": "integer", "minimum": 0, "maximum": 8},
					"format":     map[string]any{"type": "string", "enum": []any{"multiple-choice", "free-response"}},
					"choices":    map[string]any{"type": "integer", "minimum": 0, "maximum": 8},
					"a":          map[string]any{"type": "number"},
					"b":          map[string]any{"type": "number"},
					"c":          map[string]any{"type": "number"},
				},
				"required":             []any{"id", "skill_id", "format"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"items"},
	"additionalProperties": false,
}

// itemRecord is the wire form of an item in a snapshot file.
type itemRecord struct {
	ID        string         `json:"id"`
	SkillID   string         `json:"skill_id"`
	Tier      DifficultyTier `json:"tier,omitempty"`
	ScoreBand int            `json:"score_band,omitempty"`
	Format    AnswerFormat   `json:"format"`
	Choices   int            `json:"choices,omitempty"`
	A         *float64       `json:"a,omitempty"`
	B         *float64       `json:"b,omitempty"`
	C         *float64       `json:"c,omitempty"`
}

type snapshotFile struct {
	Items []itemRecord `json:"items"`
}

// Load reads and validates a bank snapshot file.
func Load(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	return Parse(raw)
}

// Parse validates raw snapshot JSON against the bank schema and builds
// a Bank. Items tagged with skills missing from the taxonomy are
// rejected so a stale bank file fails loudly instead of silently
// shrinking pools.
func Parse(raw []byte) (*Bank, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid bank JSON: %w", err)
	}

	compiled, err := compiledItemSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("bank schema validation: %w", err)
	}

	var file snapshotFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode bank JSON: %w", err)
	}

	items := make([]Item, 0, len(file.Items))
	for i, rec := range file.Items {
		if _, err := taxonomy.GetSkill(rec.SkillID); err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", i, rec.ID, err)
		}
		items = append(items, Item{
			ID:        rec.ID,
			SkillID:   rec.SkillID,
			Tier:      rec.Tier,
			ScoreBand: rec.ScoreBand,
			Format:    rec.Format,
			Choices:   rec.Choices,
			A:         rec.A,
			B:         rec.B,
			C:         rec.C,
		})
	}
	return NewBank(items), nil
}

// Marshal renders items back into the snapshot file format, e.g. to
// persist a bank after bulk calibration.
func Marshal(items []Item) ([]byte, error) {
	file := snapshotFile{Items: make([]itemRecord, len(items))}
	for i, it := range items {
		file.Items[i] = itemRecord{
			ID:        it.ID,
			SkillID:   it.SkillID,
			Tier:      it.Tier,
			ScoreBand: it.ScoreBand,
			Format:    it.Format,
			Choices:   it.Choices,
			A:         it.A,
			B:         it.B,
			C:         it.C,
		}
	}
	out, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode bank JSON: %w", err)
	}
	return out, nil
}

// compiledItemSchema compiles the bank schema once per call site; the
// schema is small enough that caching is not worth the sync.Map.
func compiledItemSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(itemSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal bank schema: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse bank schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://item-bank.json", def); err != nil {
		return nil, fmt.Errorf("add bank schema resource: %w", err)
	}
	compiled, err := c.Compile("schema://item-bank.json")
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	return compiled, nil
}
