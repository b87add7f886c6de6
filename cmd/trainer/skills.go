package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artem13815/screening/pkg/config"
	"github.com/artem13815/screening/pkg/resume"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage the skill catalog used by the resume parser",
}

var skillsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Add skills to the catalog file (duplicates are ignored)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		path, _ := cmd.Flags().GetString("file")
		if path == "" {
			path = cfg.SkillsFile
		}
		add, _ := cmd.Flags().GetStringSlice("add")
		cleaned := make([]string, 0, len(add))
		for _, s := range add {
			if s = strings.TrimSpace(s); s != "" {
				cleaned = append(cleaned, s)
			}
		}
		if len(cleaned) == 0 {
			return fmt.Errorf("--add requires at least one skill")
		}
		total, err := resume.UpdateCatalogFile(path, cleaned)
		if err != nil {
			return err
		}
		fmt.Printf("catalog %s now holds %d skills\n", path, total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(skillsCmd)
	skillsCmd.AddCommand(skillsUpdateCmd)

	skillsUpdateCmd.Flags().String("file", "", "catalog file path (default SKILLS_FILE from env)")
	skillsUpdateCmd.Flags().StringSlice("add", nil, "skills to add, comma separated or repeated")
}
