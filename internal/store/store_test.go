package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryResponses(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := ResponseEventData{
		SessionID:      "sess-1",
		ItemID:         "q-7",
		SkillID:        "linear-equations-one-var",
		DomainID:       "algebra",
		Section:        "math",
		Tier:           "medium",
		Correct:        true,
		TimeMs:         42_000,
		Discrimination: 1.0,
		Difficulty:     -0.5,
		Guessing:       0.25,
		ThetaAfter:     0.3,
		SEAfter:        0.8,
	}
	if _, err := repo.AppendResponse(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}
	data.ItemID, data.Correct = "q-8", false
	if _, err := repo.AppendResponse(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.ResponsesForSkill(ctx, "linear-equations-one-var", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].Sequence >= records[1].Sequence {
		t.Error("records not in sequence order")
	}
	if records[0].ItemID != "q-7" || records[1].ItemID != "q-8" {
		t.Errorf("item order = %s, %s", records[0].ItemID, records[1].ItemID)
	}
	if records[0].Difficulty != -0.5 || records[0].Guessing != 0.25 {
		t.Error("item parameters not round-tripped")
	}

	// Another skill sees nothing.
	other, err := repo.ResponsesForSkill(ctx, "percentages", QueryOpts{})
	if err != nil {
		t.Fatalf("query other: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("other skill records = %d, want 0", len(other))
	}
}

func TestSkillAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	acc, n, err := repo.SkillAccuracy(ctx, "lines-angles-triangles")
	if err != nil {
		t.Fatalf("accuracy (empty): %v", err)
	}
	if acc != 0 || n != 0 {
		t.Errorf("empty accuracy = %v/%d, want 0/0", acc, n)
	}

	for _, correct := range []bool{true, true, false, true} {
		_, err := repo.AppendResponse(ctx, ResponseEventData{
			SessionID: "sess-1", ItemID: "q", SkillID: "lines-angles-triangles",
			DomainID: "geometry-trig", Section: "math", Tier: "easy",
			Correct: correct,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	acc, n, err = repo.SkillAccuracy(ctx, "lines-angles-triangles")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if n != 4 {
		t.Errorf("count = %d, want 4", n)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}
}

func TestRecentExposuresNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"q1", "q2", "q3"} {
		_, err := repo.AppendResponse(ctx, ResponseEventData{
			SessionID: "sess-1", ItemID: id, SkillID: "ratios-rates",
			DomainID: "problem-solving-data", Section: "math", Tier: "easy",
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	records, err := repo.RecentExposures(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].ItemID != "q3" || records[1].ItemID != "q2" {
		t.Errorf("order = %s, %s, want q3, q2", records[0].ItemID, records[1].ItemID)
	}
}

func TestMasteryEventsSequencedWithResponses(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	respSeq, err := repo.AppendResponse(ctx, ResponseEventData{
		SessionID: "sess-1", ItemID: "q1", SkillID: "boundaries",
		DomainID: "english-conventions", Section: "reading-writing", Tier: "easy",
		Correct: true,
	})
	if err != nil {
		t.Fatalf("append response: %v", err)
	}
	mastSeq, err := repo.AppendMastery(ctx, MasteryEventData{
		SkillID: "boundaries", FromLevel: "Not Started", ToLevel: "Familiar",
		Theta: 0.2, SessionID: "sess-1",
	})
	if err != nil {
		t.Fatalf("append mastery: %v", err)
	}
	if respSeq != 1 || mastSeq != 2 {
		t.Errorf("sequences = %d, %d, want 1, 2", respSeq, mastSeq)
	}

	// The mastery event consumed the sequence after the response.
	records, err := repo.ResponsesForSkill(ctx, "boundaries", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if records[0].Sequence != 1 {
		t.Errorf("response sequence = %d, want 1", records[0].Sequence)
	}

	hist, err := repo.MasteryHistory(ctx, "boundaries")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 1 {
		t.Fatalf("history = %d entries, want 1", len(hist))
	}
	if hist[0].ToLevel != "Familiar" {
		t.Errorf("to level = %q, want Familiar", hist[0].ToLevel)
	}
}

func TestAppendResponsePersistsLogicalTime(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// A response recorded long before the append must read back with
	// its own time, not the insert time.
	at := time.Date(2026, 3, 10, 9, 4, 0, 0, time.UTC)
	_, err := repo.AppendResponse(ctx, ResponseEventData{
		SessionID: "sess-1", ItemID: "q1", SkillID: "percentages",
		DomainID: "problem-solving-data", Section: "math", Tier: "medium",
		Correct: true, At: at,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	_, err = repo.AppendMastery(ctx, MasteryEventData{
		SkillID: "percentages", FromLevel: "Not Started", ToLevel: "Familiar",
		Theta: 0.1, At: at,
	})
	if err != nil {
		t.Fatalf("append mastery: %v", err)
	}

	records, err := repo.Responses(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if !records[0].At.Equal(at) {
		t.Errorf("response time = %v, want %v", records[0].At, at)
	}

	last, err := repo.LatestResponseTime(ctx, "percentages")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if !last.Equal(at) {
		t.Errorf("latest response time = %v, want %v", last, at)
	}

	hist, err := repo.MasteryHistory(ctx, "percentages")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !hist[0].At.Equal(at) {
		t.Errorf("transition time = %v, want %v", hist[0].At, at)
	}
}

func TestAppendResponseAllowsUntaggedTier(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Bank items may carry no difficulty tier; recording a response to
	// one must not fail validation.
	_, err := repo.AppendResponse(ctx, ResponseEventData{
		SessionID: "sess-1", ItemID: "q1", SkillID: "circles",
		DomainID: "geometry-trig", Section: "math", Tier: "",
		Correct: false,
	})
	if err != nil {
		t.Fatalf("append with empty tier: %v", err)
	}

	records, err := repo.ResponsesForSkill(ctx, "circles", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 || records[0].Tier != "" {
		t.Fatalf("records = %+v, want one untagged response", records)
	}
}

func TestAppendIntake(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	_, err := repo.AppendIntake(ctx, IntakeEventData{
		SessionID: "diag-1", Action: "completed",
		ItemsAsked: 24, CompositeLow: 980, CompositeHigh: 1140,
	})
	if err != nil {
		t.Fatalf("append intake: %v", err)
	}

	count, err := s.Client().IntakeEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("intake events = %d, want 1", count)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Skills: map[string]SkillState{
				"linear-equations-one-var": {Theta: 0.7, SE: 0.5, ResponseCount: 9, Level: 2},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	st, ok := snap.Data.Skills["linear-equations-one-var"]
	if !ok {
		t.Fatal("skill state missing from snapshot")
	}
	if st.Theta != 0.7 || st.Level != 2 {
		t.Errorf("skill state = %+v", st)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}
