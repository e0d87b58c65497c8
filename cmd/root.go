package cmd

import (
	"github.com/prepmate/prepmate/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prepmate",
	Short: "Adaptive SAT practice engine",
	Long:  "Prepmate — terminal SAT tutor that adapts question difficulty to your measured ability and tracks skill mastery over time.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPMATE_DB env var)")

	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PREPMATE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
