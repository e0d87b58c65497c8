package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prepmate/prepmate/internal/ability"
	"github.com/prepmate/prepmate/internal/bank"
	"github.com/prepmate/prepmate/internal/calibration"
	"github.com/prepmate/prepmate/internal/engine"
	"github.com/prepmate/prepmate/internal/selector"
	"github.com/prepmate/prepmate/internal/sim"
	"github.com/prepmate/prepmate/internal/store"
	"github.com/prepmate/prepmate/internal/student"
	"github.com/prepmate/prepmate/internal/ui/theme"
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run an adaptive practice session with a simulated student",
	Long: "Practice serves adaptively selected items in one skill or domain,\n" +
		"answers them with a simulated student, and folds every response into\n" +
		"the stored ability and mastery state.",
	RunE: func(cmd *cobra.Command, args []string) error {
		bankPath, _ := cmd.Flags().GetString("bank")
		skillID, _ := cmd.Flags().GetString("skill")
		domainID, _ := cmd.Flags().GetString("domain")
		theta, _ := cmd.Flags().GetFloat64("theta")
		seed, _ := cmd.Flags().GetUint64("seed")
		count, _ := cmd.Flags().GetInt("items")
		challengeBias, _ := cmd.Flags().GetFloat64("challenge-bias")
		weight, _ := cmd.Flags().GetFloat64("weight")
		estimatorKind, _ := cmd.Flags().GetString("estimator")

		if (skillID == "") == (domainID == "") {
			return fmt.Errorf("specify exactly one of --skill or --domain")
		}

		b, err := bank.Load(bankPath)
		if err != nil {
			return fmt.Errorf("load bank: %w", err)
		}
		all := b.Items()
		calibration.Run(all)
		pool := bank.NewBank(all)

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		settings := engine.DefaultSettings()
		settings.ChallengeBias = challengeBias
		if weight != 0 {
			settings.ThetaUpdateWeight = weight
		}
		estimator, err := ability.New(ability.Kind(estimatorKind), ability.DefaultPrior())
		if err != nil {
			return err
		}
		eng := engine.New(estimator, ability.DefaultPrior(), settings, seed)

		tracker := student.NewTracker(eng, st.EventRepo())
		ctx := context.Background()
		if err := tracker.Load(ctx); err != nil {
			return fmt.Errorf("load student state: %w", err)
		}

		learner := sim.NewLearner(theta, seed)
		sessionID := uuid.NewString()
		now := time.Now().UTC()

		fmt.Println(theme.Title.Render("Practice Session"))
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf(
			"session %s — simulated ability %.2f", sessionID, theta)))
		fmt.Println()

		served := 0
		for served < count {
			filter, est := practiceScope(tracker, skillID, domainID)
			item, err := tracker.NextItem(pool, filter, est, now)
			if errors.Is(err, selector.ErrPoolExhausted) {
				fmt.Println(theme.Hint.Render("Pool exhausted; ending session early."))
				break
			}
			if err != nil {
				return fmt.Errorf("select item: %w", err)
			}

			params, _ := item.Params()
			correct := learner.Answer(params)
			u, err := tracker.RecordResponse(ctx, sessionID, item, correct, 30*time.Second, now)
			if err != nil {
				return fmt.Errorf("record response: %w", err)
			}

			mark := theme.Correct.Render("✓")
			if !correct {
				mark = theme.Incorrect.Render("✗")
			}
			fmt.Printf("  %s %-12s %-8s θ %+5.2f ±%.2f  %s\n",
				mark, item.ID, item.Tier, u.Skill.Theta, u.Skill.SE, u.Level)
			if u.Transition != nil {
				fmt.Println("    " + theme.Correct.Render(
					fmt.Sprintf("%s: %s → %s", u.Transition.SkillID, u.Transition.From, u.Transition.To)))
			}

			served++
			now = now.Add(time.Minute)
		}

		if served > 0 {
			snaps := st.SnapshotRepo()
			if err := snaps.Save(ctx, tracker.Snapshot(now)); err != nil {
				return fmt.Errorf("save snapshot: %w", err)
			}
			if err := snaps.Prune(ctx, keepSnapshots); err != nil {
				return fmt.Errorf("prune snapshots: %w", err)
			}
		}

		fmt.Println()
		fmt.Printf("%d items served\n", served)
		return nil
	},
}

// practiceScope builds the selection filter and the ability estimate
// the selector targets, from the session's skill or domain scope.
func practiceScope(tracker *student.Tracker, skillID, domainID string) (bank.Filter, ability.Estimate) {
	if skillID != "" {
		return bank.Filter{SkillIDs: []string{skillID}}, tracker.Skill(skillID).Estimate
	}
	return bank.Filter{DomainID: domainID}, tracker.DomainEstimate(domainID)
}

func init() {
	practiceCmd.Flags().String("bank", "", "Path to the item bank JSON file")
	practiceCmd.Flags().String("skill", "", "Practice one skill")
	practiceCmd.Flags().String("domain", "", "Practice one domain")
	practiceCmd.Flags().Float64("theta", 0, "True ability of the simulated student")
	practiceCmd.Flags().Uint64("seed", 1, "Random seed for the simulation")
	practiceCmd.Flags().Int("items", 10, "Number of items to serve")
	practiceCmd.Flags().Float64("challenge-bias", 0, "Bias selection toward harder items (0-1)")
	practiceCmd.Flags().Float64("weight", 0, "Ability update weight (0.5-2.0)")
	practiceCmd.Flags().String("estimator", "eap", "Ability estimator (eap or mle)")
	practiceCmd.MarkFlagRequired("bank")
}
