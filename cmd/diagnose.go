package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prepmate/prepmate/internal/bank"
	"github.com/prepmate/prepmate/internal/calibration"
	"github.com/prepmate/prepmate/internal/intake"
	"github.com/prepmate/prepmate/internal/sim"
	"github.com/prepmate/prepmate/internal/store"
	"github.com/prepmate/prepmate/internal/ui/theme"
	"github.com/spf13/cobra"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Run a diagnostic intake session with a simulated student",
	Long: "Diagnose runs the fixed-length adaptive diagnostic against a simulated\n" +
		"student of known ability, prints the resulting report, and records the\n" +
		"session in the event log.",
	RunE: func(cmd *cobra.Command, args []string) error {
		bankPath, _ := cmd.Flags().GetString("bank")
		theta, _ := cmd.Flags().GetFloat64("theta")
		seed, _ := cmd.Flags().GetUint64("seed")
		items, _ := cmd.Flags().GetInt("items")

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
		events := st.EventRepo()
		ctx := context.Background()

		cfg := intake.DefaultConfig()
		cfg.Seed = seed
		if items > 0 {
			cfg.TotalItems = items
		}
		session := intake.New(pool, cfg)
		learner := sim.NewLearner(theta, seed)

		now := time.Now().UTC()
		_, err = events.AppendIntake(ctx, store.IntakeEventData{
			SessionID: session.ID,
			Action:    "started",
			At:        now,
		})
		if err != nil {
			return err
		}
		for {
			item, err := session.Next(now)
			if errors.Is(err, intake.ErrSessionComplete) {
				break
			}
			if err != nil {
				return fmt.Errorf("next item: %w", err)
			}
			params, _ := item.Params()
			if err := session.Submit(learner.Answer(params), now); err != nil {
				return fmt.Errorf("submit: %w", err)
			}
			now = now.Add(time.Minute)
		}

		result := session.Result(now)
		_, err = events.AppendIntake(ctx, store.IntakeEventData{
			SessionID:     session.ID,
			Action:        "completed",
			ItemsAsked:    result.ItemsAsked,
			CompositeLow:  result.Composite.Low,
			CompositeHigh: result.Composite.High,
			At:            now,
		})
		if err != nil {
			return err
		}

		printIntakeResult(result, theta)
		return nil
	},
}

func printIntakeResult(r *intake.Result, trueTheta float64) {
	fmt.Println(theme.Title.Render("Diagnostic Report"))
	fmt.Println(theme.Subtitle.Render(fmt.Sprintf(
		"session %s — %d items — simulated ability %.2f", r.SessionID, r.ItemsAsked, trueTheta)))
	fmt.Println()

	fmt.Println(theme.TableHeader.Render(
		fmt.Sprintf("  %-32s  %7s  %6s  %5s", "domain", "ability", "stderr", "items")))
	for _, d := range r.Domains {
		fmt.Printf("  %-32s  %+7.2f  %6.2f  %5d\n",
			d.Domain.Name, d.Estimate.Theta, d.Estimate.SE, d.Estimate.ResponseCount)
	}
	fmt.Println()

	for _, s := range r.Sections {
		fmt.Printf("  %-16s  ability %+5.2f   predicted %d–%d\n",
			s.Section, s.Estimate.Theta, s.Score.Low, s.Score.High)
	}
	fmt.Printf("  %-16s  predicted %d–%d\n", "composite", r.Composite.Low, r.Composite.High)

	if len(r.Priorities) > 0 {
		fmt.Println()
		fmt.Println(theme.Title.Render("Priority Areas"))
		for i, p := range r.Priorities {
			fmt.Printf("  %d. %s %s\n", i+1, p.Domain.Name,
				theme.Hint.Render(fmt.Sprintf("(ability %+.2f, gap %.2f)", p.Theta, p.Gap)))
		}
	}
}

func init() {
	diagnoseCmd.Flags().String("bank", "", "Path to the item bank JSON file")
	diagnoseCmd.Flags().Float64("theta", 0, "True ability of the simulated student")
	diagnoseCmd.Flags().Uint64("seed", 1, "Random seed for the simulation")
	diagnoseCmd.Flags().Int("items", 0, "Item budget (default 24)")
	diagnoseCmd.MarkFlagRequired("bank")
}
