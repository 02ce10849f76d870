package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"intervue/internal/catalog"
)

var careersCmd = &cobra.Command{
	Use:   "careers",
	Short: "List available careers and difficulty levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		lang := cfg.Language
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s\n%s\n", tr(lang, "Careers", "Carreras"), strings.Repeat("─", 50))
		fmt.Fprintf(out, "%-20s  %-26s  %s\n", "ID", tr(lang, "Name", "Nombre"), tr(lang, "Category", "Categoría"))
		for _, c := range catalog.Careers() {
			fmt.Fprintf(out, "%-20s  %-26s  %s\n", c.ID, c.Label.Text(lang), c.Category.Text(lang))
		}

		fmt.Fprintf(out, "\n%s\n%s\n", tr(lang, "Difficulty levels", "Niveles de dificultad"), strings.Repeat("─", 50))
		fmt.Fprintf(out, "%-14s  %-16s  %-10s  %-8s  %s\n",
			"ID", tr(lang, "Name", "Nombre"),
			tr(lang, "Questions", "Preguntas"),
			tr(lang, "Min/Q", "Min/P"),
			tr(lang, "Min chars", "Mín chars"))
		for _, d := range catalog.Difficulties() {
			fmt.Fprintf(out, "%-14s  %-16s  %-10d  %-8d  %d\n",
				d.ID, d.Label.Text(lang), d.QuestionsCount, d.TimePerQuestion, d.MinimumAnswerLength)
		}
		return nil
	},
}
