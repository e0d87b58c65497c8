package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/prepmate/prepmate/internal/store"
	"github.com/prepmate/prepmate/internal/taxonomy"
	"github.com/prepmate/prepmate/internal/ui/theme"
	"github.com/spf13/cobra"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the content taxonomy",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills (optionally filtered by section or domain)",
	RunE: func(cmd *cobra.Command, args []string) error {
		section, _ := cmd.Flags().GetString("section")
		domainID, _ := cmd.Flags().GetString("domain")

		var skills []taxonomy.Skill

		switch {
		case section != "" && domainID != "":
			return fmt.Errorf("use --section or --domain, not both")
		case domainID != "":
			skills = taxonomy.SkillsByDomain(domainID)
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for domain %q", domainID)
			}
		case section != "":
			for _, d := range taxonomy.DomainsBySection(taxonomy.Section(section)) {
				skills = append(skills, taxonomy.SkillsByDomain(d.ID)...)
			}
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for section %q", section)
			}
		default:
			skills = taxonomy.AllSkills()
		}

		// Header.
		fmt.Printf("%-28s  %-40s  %-26s  %s\n", "ID", "Name", "Domain", "Section")
		fmt.Println(strings.Repeat("─", 115))

		for _, s := range skills {
			d, err := taxonomy.GetDomain(s.DomainID)
			if err != nil {
				return err
			}
			name := s.Name
			if len(name) > 40 {
				name = name[:37] + "..."
			}
			fmt.Printf("%-28s  %-40s  %-26s  %s\n", s.ID, name, d.Name, d.Section)
		}

		fmt.Printf("\n%d skills\n", len(skills))
		return nil
	},
}

var skillHistoryCmd = &cobra.Command{
	Use:   "history <skill-id>",
	Short: "Show the recorded mastery level transitions for a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := taxonomy.GetSkill(args[0])
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		hist, err := st.EventRepo().MasteryHistory(context.Background(), s.ID)
		if err != nil {
			return fmt.Errorf("load mastery history: %w", err)
		}
		if len(hist) == 0 {
			fmt.Println(theme.Hint.Render(fmt.Sprintf("No level changes recorded for %s yet.", s.ID)))
			return nil
		}

		fmt.Println(theme.Title.Render(s.Name))
		for _, h := range hist {
			fmt.Printf("  %s  %-12s → %-12s  θ %+.2f\n",
				h.At.Format("2006-01-02 15:04"), h.FromLevel, h.ToLevel, h.Theta)
		}
		return nil
	},
}

func init() {
	skillListCmd.Flags().String("section", "", "Filter by section (math or reading-writing)")
	skillListCmd.Flags().String("domain", "", "Filter by domain (e.g. algebra)")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillHistoryCmd)
}
