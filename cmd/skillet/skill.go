package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/skillforge/skillet/pkg/presenter"
	"github.com/skillforge/skillet/pkg/skills"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage skillet skills",
	Long:  `List, show, and validate skills from the configured skill directories.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all installed skills",
	Long:  `List all installed skills with their names, descriptions, and directory paths.`,
	Run: func(_ *cobra.Command, _ []string) {
		listSkillsCmd()
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <skill-name>",
	Short: "Print a skill's instructions",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		showSkillCmd(args[0])
	},
}

var skillValidateCmd = &cobra.Command{
	Use:   "validate [dir...]",
	Short: "Validate skill directories",
	Long: `Validate every skill under the given directories (or the configured skill
directories when none are given): frontmatter schema, name format, internal
link integrity. Exits non-zero if any skill fails.

Examples:
  skillet skill validate
  skillet skill validate ./skills
  skillet skill validate --max-description 4096 ./skills`,
	Run: func(cmd *cobra.Command, args []string) {
		maxDescription, _ := cmd.Flags().GetInt("max-description")
		validateSkillsCmd(args, maxDescription)
	},
}

func init() {
	skillValidateCmd.Flags().Int("max-description", skills.DefaultMaxDescription, "Maximum allowed description length")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
	skillCmd.AddCommand(skillValidateCmd)
	rootCmd.AddCommand(skillCmd)
}

// newDiscovery builds a Discovery honoring the skills.dirs config override
func newDiscovery() (*skills.Discovery, error) {
	if dirs := viper.GetStringSlice("skills.dirs"); len(dirs) > 0 {
		return skills.NewDiscovery(skills.WithSkillDirs(dirs...))
	}
	return skills.NewDiscovery()
}

func listSkillsCmd() {
	discovery, err := newDiscovery()
	if err != nil {
		presenter.Error(err, "Failed to initialize skill discovery")
		os.Exit(1)
	}

	allSkills, err := discovery.DiscoverSkills()
	if err != nil {
		presenter.Error(err, "Failed to discover skills")
		os.Exit(1)
	}

	if len(allSkills) == 0 {
		presenter.Info("No skills installed")
		return
	}

	names := make([]string, 0, len(allSkills))
	for name := range allSkills {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDIRECTORY\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t---------\t-----------")

	for _, name := range names {
		skill := allSkills[name]
		description := skill.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", skill.Name, skill.Directory, description)
	}
	tw.Flush()
}

func showSkillCmd(name string) {
	discovery, err := newDiscovery()
	if err != nil {
		presenter.Error(err, "Failed to initialize skill discovery")
		os.Exit(1)
	}

	skill, err := discovery.GetSkill(name)
	if err != nil {
		presenter.Error(err, "Skill not found")
		os.Exit(1)
	}

	fmt.Println(skill.Content)
}

func validateSkillsCmd(roots []string, maxDescription int) {
	if len(roots) == 0 {
		discovery, err := newDiscovery()
		if err != nil {
			presenter.Error(err, "Failed to initialize skill discovery")
			os.Exit(1)
		}
		for _, dir := range discovery.SkillDirs() {
			if _, err := os.Stat(dir); err == nil {
				roots = append(roots, dir)
			}
		}
	}

	if len(roots) == 0 {
		presenter.Warning("No skill directories to validate")
		return
	}

	validator := skills.NewValidator(skills.WithMaxDescription(maxDescription))

	total := 0
	for _, root := range roots {
		issues, err := validator.ValidateDir(root)
		if err != nil {
			presenter.Error(err, "Validation failed")
			os.Exit(1)
		}

		for _, issue := range issues {
			presenter.Warning(issue.String())
		}
		total += len(issues)
	}

	if total > 0 {
		presenter.Error(fmt.Errorf("%d issue(s) found", total), "Validation failed")
		os.Exit(1)
	}

	presenter.Success("All skills are valid")
}
