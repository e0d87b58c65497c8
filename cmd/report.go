package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/prepmate/prepmate/internal/ability"
	"github.com/prepmate/prepmate/internal/engine"
	"github.com/prepmate/prepmate/internal/mastery"
	"github.com/prepmate/prepmate/internal/scoring"
	"github.com/prepmate/prepmate/internal/store"
	"github.com/prepmate/prepmate/internal/student"
	"github.com/prepmate/prepmate/internal/taxonomy"
	"github.com/prepmate/prepmate/internal/ui/theme"
	"github.com/spf13/cobra"
)

// keepSnapshots bounds the snapshot history retained after each save.
const keepSnapshots = 5

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show ability, mastery, and predicted scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		view, err := loadReportView(context.Background(), st, time.Now().UTC())
		if err != nil {
			return err
		}
		if len(view.skills) == 0 {
			fmt.Println(theme.Hint.Render("No practice history yet. Run a diagnostic or practice session first."))
			return nil
		}

		printStudentReport(view, time.Now().UTC())
		return nil
	},
}

// reportView is the state a report renders from, built either from the
// latest snapshot or from a full event replay.
type reportView struct {
	skills   map[string]student.SkillState
	domains  map[string]ability.Estimate
	sections map[taxonomy.Section]ability.Estimate
}

func newReportView() *reportView {
	return &reportView{
		skills:   make(map[string]student.SkillState),
		domains:  make(map[string]ability.Estimate),
		sections: make(map[taxonomy.Section]ability.Estimate),
	}
}

// loadReportView renders from the latest snapshot when no responses
// landed after it. Otherwise it replays the full log and refreshes the
// snapshot so the next report takes the fast path.
func loadReportView(ctx context.Context, st *store.Store, now time.Time) (*reportView, error) {
	snaps := st.SnapshotRepo()
	snap, err := snaps.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap != nil {
		tail, err := st.EventRepo().Responses(ctx, store.QueryOpts{After: snap.Sequence, Limit: 1})
		if err != nil {
			return nil, fmt.Errorf("check snapshot freshness: %w", err)
		}
		if len(tail) == 0 {
			return viewFromSnapshot(snap), nil
		}
	}

	tracker := student.NewTracker(engine.Default(1), st.EventRepo())
	if err := tracker.Load(ctx); err != nil {
		return nil, fmt.Errorf("load student state: %w", err)
	}
	if len(tracker.Skills()) > 0 {
		if err := snaps.Save(ctx, tracker.Snapshot(now)); err != nil {
			return nil, fmt.Errorf("save snapshot: %w", err)
		}
		if err := snaps.Prune(ctx, keepSnapshots); err != nil {
			return nil, fmt.Errorf("prune snapshots: %w", err)
		}
	}
	return viewFromTracker(tracker), nil
}

func viewFromTracker(tracker *student.Tracker) *reportView {
	v := newReportView()
	for _, id := range tracker.Skills() {
		v.skills[id] = tracker.Skill(id)
	}
	for _, section := range taxonomy.AllSections() {
		v.sections[section] = tracker.SectionEstimate(section)
		for _, d := range taxonomy.DomainsBySection(section) {
			v.domains[d.ID] = tracker.DomainEstimate(d.ID)
		}
	}
	return v
}

func viewFromSnapshot(snap *store.Snapshot) *reportView {
	v := newReportView()
	for id, s := range snap.Data.Skills {
		v.skills[id] = student.SkillState{
			Estimate: ability.Estimate{Theta: s.Theta, SE: s.SE, ResponseCount: s.ResponseCount},
			Level:    mastery.Level(s.Level),
			Counters: mastery.Counters{
				Total:             s.Total,
				Correct:           s.Correct,
				MediumPlusTotal:   s.MediumTotal,
				MediumPlusCorrect: s.MediumCorrect,
				HardTotal:         s.HardTotal,
				HardCorrect:       s.HardCorrect,
				LastPracticed:     s.LastPracticed,
			},
			LastPracticed: s.LastPracticed,
		}
	}
	for id, e := range snap.Data.Domains {
		v.domains[id] = ability.Estimate{Theta: e.Theta, SE: e.SE, ResponseCount: e.ResponseCount}
	}
	for name, e := range snap.Data.Sections {
		v.sections[taxonomy.Section(name)] = ability.Estimate{Theta: e.Theta, SE: e.SE, ResponseCount: e.ResponseCount}
	}
	return v
}

func printStudentReport(view *reportView, now time.Time) {
	fmt.Println(theme.Title.Render("Progress Report"))
	fmt.Println()

	for _, section := range taxonomy.AllSections() {
		est := view.sections[section]
		score := scoring.PredictSectionScore(est)
		fmt.Println(theme.TableHeader.Render(fmt.Sprintf("%s — predicted %d–%d",
			taxonomy.SectionDisplayName(section), score.Low, score.High)))

		for _, d := range taxonomy.DomainsBySection(section) {
			dEst := view.domains[d.ID]
			if dEst.ResponseCount == 0 {
				continue
			}
			fmt.Printf("  %s %s\n", theme.Body.Render(d.Name),
				theme.Subtitle.Render(fmt.Sprintf("θ %+.2f ±%.2f, %d responses",
					dEst.Theta, dEst.SE, dEst.ResponseCount)))

			for _, s := range taxonomy.SkillsByDomain(d.ID) {
				state, ok := view.skills[s.ID]
				if !ok || state.Estimate.ResponseCount == 0 {
					continue
				}
				fmt.Printf("    %-28s  θ %+5.2f ±%.2f  %s\n",
					s.ID, state.Estimate.Theta, state.Estimate.SE,
					levelBadge(state, now))
			}
		}
		fmt.Println()
	}

	composite := scoring.PredictCompositeScore(
		scoring.PredictSectionScore(view.sections[taxonomy.SectionMath]),
		scoring.PredictSectionScore(view.sections[taxonomy.SectionReading]),
	)
	fmt.Println(theme.Title.Render(fmt.Sprintf("Predicted composite: %d–%d", composite.Low, composite.High)))
}

// levelBadge renders the display-time mastery level, flagging decayed
// skills without touching their stored level.
func levelBadge(state student.SkillState, now time.Time) string {
	effective, stale := mastery.Effective(state.Level, state.LastPracticed, now)
	if stale {
		return theme.Stale.Render(effective.Label() + " (needs review)")
	}
	return theme.Body.Render(effective.Label())
}
