package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"intervue/internal/chat"
	"intervue/internal/llm"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Free-form conversation outside an interview",
	Long:  "Chat opens an open-ended conversation with the model, useful for warming up or asking career questions. Type /quit to leave.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		log, err := buildLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		provider, err := llm.NewProvider(ctx, cfg.LLM(), log)
		if err != nil {
			return err
		}

		c := chat.New(provider, cfg.Language)
		in := bufio.NewReader(cmd.InOrStdin())
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, tr(cfg.Language,
			"Chat started. Type /quit to leave.",
			"Chat iniciado. Escribe /quit para salir."))

		for {
			fmt.Fprint(out, "\n> ")
			line, err := in.ReadString('\n')
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}

			message := strings.TrimSpace(line)
			if message == "" {
				continue
			}
			if message == "/quit" || message == "/exit" {
				return nil
			}

			reply, err := c.Send(ctx, message)
			if err != nil {
				fmt.Fprintf(out, "%s: %v\n", tr(cfg.Language, "Error", "Error"), err)
				continue
			}
			fmt.Fprintf(out, "\n%s\n", reply)
		}
	},
}
