package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/prepmate/prepmate/internal/bank"
	"github.com/prepmate/prepmate/internal/engine"
	"github.com/prepmate/prepmate/internal/store"
	"github.com/prepmate/prepmate/internal/student"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func reportItem(id string, b float64) bank.Item {
	a, c := 1.0, 0.25
	return bank.Item{
		ID:      id,
		SkillID: "percentages",
		Tier:    bank.TierMedium,
		Format:  bank.FormatMultipleChoice,
		Choices: 4,
		A:       &a, B: &b, C: &c,
	}
}

func TestLoadReportViewUsesFreshSnapshot(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tr := student.NewTracker(engine.Default(1), st.EventRepo())
	if _, err := tr.RecordResponse(ctx, "sess-1", reportItem("q1", 0), true, 0, now); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := st.SnapshotRepo().Save(ctx, tr.Snapshot(now)); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	view, err := loadReportView(ctx, st, now)
	if err != nil {
		t.Fatalf("load view: %v", err)
	}
	sk, ok := view.skills["percentages"]
	if !ok {
		t.Fatal("skill missing from view")
	}
	if sk.Estimate.ResponseCount != 1 {
		t.Errorf("response count = %d, want 1", sk.Estimate.ResponseCount)
	}
	if view.domains["problem-solving-data"].ResponseCount != 1 {
		t.Errorf("domain estimate = %+v, want 1 response", view.domains["problem-solving-data"])
	}

	// The snapshot was current, so none was rewritten.
	count, err := st.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("snapshots = %d, want 1", count)
	}
}

func TestLoadReportViewReplaysAndRefreshesStaleSnapshot(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tr := student.NewTracker(engine.Default(1), st.EventRepo())
	if _, err := tr.RecordResponse(ctx, "sess-1", reportItem("q1", 0), true, 0, now); err != nil {
		t.Fatalf("record q1: %v", err)
	}
	if err := st.SnapshotRepo().Save(ctx, tr.Snapshot(now)); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	// A response after the snapshot forces a full replay.
	later := now.Add(time.Minute)
	if _, err := tr.RecordResponse(ctx, "sess-1", reportItem("q2", 0.5), false, 0, later); err != nil {
		t.Fatalf("record q2: %v", err)
	}

	view, err := loadReportView(ctx, st, later)
	if err != nil {
		t.Fatalf("load view: %v", err)
	}
	if got := view.skills["percentages"].Estimate.ResponseCount; got != 2 {
		t.Errorf("response count = %d, want 2", got)
	}

	// The replay refreshed the snapshot; a second load is fresh again.
	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data.Skills["percentages"].Total != 2 {
		t.Errorf("refreshed snapshot total = %d, want 2", snap.Data.Skills["percentages"].Total)
	}
	tail, err := st.EventRepo().Responses(ctx, store.QueryOpts{After: snap.Sequence, Limit: 1})
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	if len(tail) != 0 {
		t.Errorf("responses after refreshed snapshot = %d, want 0", len(tail))
	}
}
