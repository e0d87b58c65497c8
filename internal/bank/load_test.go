package bank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRoundTrip(t *testing.T) {
	a, b, c := 1.3, 0.5, 0.2
	items := []Item{
		{
			ID:        "alg-001",
			SkillID:   "linear-equations-one-var",
			Tier:      TierHard,
			ScoreBand: 6,
			Format:    FormatMultipleChoice,
			Choices:   4,
			A:         &a, B: &b, C: &c,
		},
		{
			ID:      "alg-002",
			SkillID: "linear-equations-one-var",
			Tier:    TierEasy,
			Format:  FormatFreeResponse,
		},
	}

	raw, err := Marshal(items)
	require.NoError(t, err)

	parsed, err := Parse(raw)
	require.NoError(t, err)

	got := parsed.Items()
	require.Len(t, got, 2)
	assert.Equal(t, items[0].ID, got[0].ID)
	assert.Equal(t, items[0].ScoreBand, got[0].ScoreBand)
	require.NotNil(t, got[0].A)
	assert.Equal(t, a, *got[0].A)

	// The uncalibrated item stays uncalibrated.
	assert.Nil(t, got[1].A)
	assert.Nil(t, got[1].B)
	assert.Nil(t, got[1].C)
}

func TestLoadFromFile(t *testing.T) {
	raw := []byte(`{
		"items": [
			{"id": "geo-001", "skill_id": "lines-angles-triangles", "tier": "medium",
			 "format": "multiple-choice", "choices": 4, "score_band": 4}
		]
	}`)
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	b, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, b.Items(), 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", `{"items": [`},
		{"missing id", `{"items": [{"skill_id": "lines-angles-triangles", "format": "multiple-choice"}]}`},
		{"bad tier", `{"items": [{"id": "x", "skill_id": "lines-angles-triangles", "tier": "extreme", "format": "multiple-choice"}]}`},
		{"unknown skill", `{"items": [{"id": "x", "skill_id": "no-such-skill", "format": "multiple-choice"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.raw))
			assert.Error(t, err)
		})
	}
}
