package student

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prepmate/prepmate/internal/bank"
	"github.com/prepmate/prepmate/internal/engine"
	"github.com/prepmate/prepmate/internal/mastery"
	"github.com/prepmate/prepmate/internal/store"
)

var now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testItem(id string, b float64) bank.Item {
	a, c := 1.0, 0.25
	return bank.Item{
		ID:      id,
		SkillID: "linear-equations-one-var",
		Tier:    bank.TierMedium,
		Format:  bank.FormatMultipleChoice,
		Choices: 4,
		A:       &a, B: &b, C: &c,
	}
}

func TestRecordResponseUpdatesState(t *testing.T) {
	st := openTestStore(t)
	tr := NewTracker(engine.Default(1), st.EventRepo())
	ctx := context.Background()

	u, err := tr.RecordResponse(ctx, "sess-1", testItem("q1", 0), true, 30*time.Second, now)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if u.Skill.ResponseCount != 1 {
		t.Errorf("response count = %d, want 1", u.Skill.ResponseCount)
	}
	if u.Skill.Theta <= 0 {
		t.Errorf("theta = %v, want > 0 after a correct answer", u.Skill.Theta)
	}

	got := tr.Skill("linear-equations-one-var")
	if got.Estimate != u.Skill {
		t.Errorf("tracked estimate = %+v, want %+v", got.Estimate, u.Skill)
	}
	if got.LastPracticed != now {
		t.Errorf("last practiced = %v, want %v", got.LastPracticed, now)
	}
}

func TestRecordResponseRejectsUncalibratedItem(t *testing.T) {
	st := openTestStore(t)
	tr := NewTracker(engine.Default(1), st.EventRepo())

	raw := bank.Item{ID: "q1", SkillID: "linear-equations-one-var", Tier: bank.TierEasy}
	if _, err := tr.RecordResponse(context.Background(), "sess-1", raw, true, 0, now); err == nil {
		t.Fatal("expected error for uncalibrated item")
	}
}

func TestLoadReplaysHistory(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	tr := NewTracker(engine.Default(1), st.EventRepo())
	clock := now
	for i, correct := range []bool{true, true, false, true, true} {
		item := testItem(fmt.Sprintf("q%d", i+1), float64(i-2)/2)
		if _, err := tr.RecordResponse(ctx, "sess-1", item, correct, 0, clock); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
		clock = clock.Add(time.Minute)
	}
	last := tr.Skill("linear-equations-one-var")

	// A fresh tracker replaying the log lands on the same state.
	tr2 := NewTracker(engine.Default(1), st.EventRepo())
	if err := tr2.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	replayed := tr2.Skill("linear-equations-one-var")
	if replayed.Estimate != last.Estimate {
		t.Errorf("replayed estimate = %+v, want %+v", replayed.Estimate, last.Estimate)
	}
	if replayed.Counters != last.Counters {
		t.Errorf("replayed counters = %+v, want %+v", replayed.Counters, last.Counters)
	}

	// Replayed times are the logical response times, not the wall-clock
	// insert times; recency windows depend on this.
	if !replayed.LastPracticed.Equal(last.LastPracticed) {
		t.Errorf("replayed last practiced = %v, want %v", replayed.LastPracticed, last.LastPracticed)
	}
	exp := tr2.Exposures()
	if len(exp) != 5 {
		t.Fatalf("replayed exposures = %d, want 5", len(exp))
	}
	for i, e := range exp {
		want := now.Add(time.Duration(i) * time.Minute)
		if !e.At.Equal(want) {
			t.Errorf("exposure %d at %v, want %v", i, e.At, want)
		}
	}
}

func TestMasteryTransitionPersisted(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	tr := NewTracker(engine.Default(1), st.EventRepo())

	// Three correct answers reach Familiar and must log a transition.
	clock := now
	for i := 0; i < 3; i++ {
		item := testItem(fmt.Sprintf("q%d", i+1), -1)
		if _, err := tr.RecordResponse(ctx, "sess-1", item, true, 0, clock); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
		clock = clock.Add(time.Minute)
	}
	if tr.Skill("linear-equations-one-var").Level < mastery.Familiar {
		t.Fatalf("level = %v, want at least Familiar", tr.Skill("linear-equations-one-var").Level)
	}

	hist, err := st.EventRepo().MasteryHistory(ctx, "linear-equations-one-var")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) == 0 {
		t.Fatal("no mastery transitions logged")
	}
	if hist[0].FromLevel != "Not Started" {
		t.Errorf("first transition from = %q, want Not Started", hist[0].FromLevel)
	}

	// Replay restores the stored level from the transition log.
	tr2 := NewTracker(engine.Default(1), st.EventRepo())
	if err := tr2.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if tr2.Skill("linear-equations-one-var").Level != tr.Skill("linear-equations-one-var").Level {
		t.Errorf("replayed level = %v, want %v",
			tr2.Skill("linear-equations-one-var").Level, tr.Skill("linear-equations-one-var").Level)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	tr := NewTracker(engine.Default(1), st.EventRepo())

	if _, err := tr.RecordResponse(ctx, "sess-1", testItem("q1", 0), true, 0, now); err != nil {
		t.Fatalf("record: %v", err)
	}

	snap := tr.Snapshot(now)
	if snap.Sequence != 1 {
		t.Errorf("snapshot sequence = %d, want 1 after one appended response", snap.Sequence)
	}
	if err := st.SnapshotRepo().Save(ctx, snap); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	loaded, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	sk, ok := loaded.Data.Skills["linear-equations-one-var"]
	if !ok {
		t.Fatal("skill missing from snapshot")
	}
	if sk.Total != 1 || sk.Correct != 1 {
		t.Errorf("snapshot counters = %d/%d, want 1/1", sk.Correct, sk.Total)
	}
	if !sk.LastPracticed.Equal(now) {
		t.Errorf("snapshot last practiced = %v, want %v", sk.LastPracticed, now)
	}
	d, ok := loaded.Data.Domains["algebra"]
	if !ok {
		t.Fatal("domain estimate missing from snapshot")
	}
	if d.ResponseCount != 1 {
		t.Errorf("domain response count = %d, want 1", d.ResponseCount)
	}
	if _, ok := loaded.Data.Sections["math"]; !ok {
		t.Fatal("section estimate missing from snapshot")
	}
}
