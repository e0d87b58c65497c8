package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ResponseEventData captures one scored item response. Item parameters
// are stamped in so ability can be replayed against the parameters the
// student actually faced. At is the logical response time and is stored
// as the event timestamp; recency windows and decay are evaluated
// against it, never against insertion time.
type ResponseEventData struct {
	SessionID      string
	ItemID         string
	SkillID        string
	DomainID       string
	Section        string
	Tier           string
	Correct        bool
	TimeMs         int
	Discrimination float64
	Difficulty     float64
	Guessing       float64
	ThetaAfter     float64
	SEAfter        float64
	At             time.Time
}

// ResponseRecord is a stored response event with its log position.
type ResponseRecord struct {
	Sequence int64
	ResponseEventData
}

// MasteryEventData captures a stored mastery level transition.
type MasteryEventData struct {
	SkillID   string
	FromLevel string
	ToLevel   string
	Theta     float64
	SessionID string
	At        time.Time
}

// IntakeEventData captures a diagnostic session lifecycle event.
type IntakeEventData struct {
	SessionID     string
	Action        string
	ItemsAsked    int
	CompositeLow  int
	CompositeHigh int
	At            time.Time
}

// SkillState is the persisted per-skill slice of a snapshot.
type SkillState struct {
	Theta         float64   `json:"theta"`
	SE            float64   `json:"se"`
	ResponseCount int       `json:"response_count"`
	Level         int       `json:"level"`
	Total         int       `json:"total"`
	Correct       int       `json:"correct"`
	MediumTotal   int       `json:"medium_total"`
	MediumCorrect int       `json:"medium_correct"`
	HardTotal     int       `json:"hard_total"`
	HardCorrect   int       `json:"hard_correct"`
	LastPracticed time.Time `json:"last_practiced,omitzero"`
}

// EstimateState is a persisted pooled ability estimate for a domain or
// section.
type EstimateState struct {
	Theta         float64 `json:"theta"`
	SE            float64 `json:"se"`
	ResponseCount int     `json:"response_count"`
}

// SnapshotData captures the full student state at a point in time.
type SnapshotData struct {
	Version  int                      `json:"version"`
	Skills   map[string]SkillState    `json:"skills,omitempty"`
	Domains  map[string]EstimateState `json:"domains,omitempty"`
	Sections map[string]EstimateState `json:"sections,omitempty"`
}

// Snapshot represents a point-in-time capture of student state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages student state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// EventRepo provides append and query access to domain events. Appends
// return the assigned global sequence number.
type EventRepo interface {
	// AppendResponse records a scored item response.
	AppendResponse(ctx context.Context, data ResponseEventData) (int64, error)

	// AppendMastery records a stored mastery level transition.
	AppendMastery(ctx context.Context, data MasteryEventData) (int64, error)

	// AppendIntake records a diagnostic session lifecycle event.
	AppendIntake(ctx context.Context, data IntakeEventData) (int64, error)

	// MasteryHistory returns every stored level transition for a skill
	// in log order.
	MasteryHistory(ctx context.Context, skillID string) ([]MasteryEventData, error)

	// StoredLevels returns the latest recorded mastery level label per
	// skill, from each skill's final transition.
	StoredLevels(ctx context.Context) (map[string]string, error)

	// Responses returns all responses in sequence order, honoring
	// QueryOpts. State rebuild replays this.
	Responses(ctx context.Context, opts QueryOpts) ([]ResponseRecord, error)

	// ResponsesForSkill returns responses for one skill in sequence
	// order, honoring QueryOpts.
	ResponsesForSkill(ctx context.Context, skillID string, opts QueryOpts) ([]ResponseRecord, error)

	// RecentExposures returns the last n administered item IDs with
	// their timestamps, newest first.
	RecentExposures(ctx context.Context, n int) ([]ResponseRecord, error)

	// LatestResponseTime returns when the skill was last practiced, or
	// the zero time if never.
	LatestResponseTime(ctx context.Context, skillID string) (time.Time, error)

	// SkillAccuracy returns the all-time accuracy and response count
	// for a skill.
	SkillAccuracy(ctx context.Context, skillID string) (float64, int, error)
}
