package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"intervue/internal/config"
	"intervue/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse completed interview sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare "history" behaves like "history list".
		return historyListCmd.RunE(cmd, args)
	},
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		sessions, err := s.Sessions().List(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No completed sessions yet.")
			return nil
		}

		fmt.Fprintf(out, "%-36s  %-19s  %-20s  %-12s  %5s  %s\n",
			"ID", "Completed", "Career", "Difficulty", "Score", "Result")
		fmt.Fprintln(out, strings.Repeat("─", 110))
		for _, sess := range sessions {
			fmt.Fprintf(out, "%-36s  %-19s  %-20s  %-12s  %4d%%  %s (%d/%d)\n",
				sess.ID,
				sess.EndedAt.Local().Format("2006-01-02 15:04:05"),
				sess.CareerID,
				sess.DifficultyID,
				sess.AverageScore,
				sess.ScoreCategory,
				sess.CompletedQuestions,
				sess.TotalQuestions,
			)
		}
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <session-id>",
	Short: "View the full transcript of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		sess, err := s.Sessions().Get(context.Background(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		lang := sess.Language
		sep := strings.Repeat("─", 60)

		fmt.Fprintf(out, "ID:         %s\n", sess.ID)
		fmt.Fprintf(out, "Career:     %s\n", sess.Career.Label.Text(lang))
		fmt.Fprintf(out, "Difficulty: %s\n", sess.Difficulty.Label.Text(lang))
		fmt.Fprintf(out, "Started:    %s\n", sess.StartTime.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(out, "Ended:      %s\n", sess.EndTime.Local().Format("2006-01-02 15:04:05"))

		for i, q := range sess.Questions {
			fmt.Fprintf(out, "\n%s\n%s %d: %s\n", sep, tr(lang, "Question", "Pregunta"), i+1, q.Text)
			if q.Answer != "" {
				fmt.Fprintf(out, "\n%s:\n%s\n", tr(lang, "Answer", "Respuesta"), q.Answer)
			}
			if q.Analysis != nil {
				printAnswerFeedback(out, lang, q.Analysis)
			}
		}

		if sess.Final != nil {
			printFinalReport(out, lang, sess, sess.Final)
		}
		return nil
	},
}

func openHistory(cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "number of sessions to show")
	historyCmd.Flags().IntP("limit", "n", 20, "number of sessions to show")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
}
