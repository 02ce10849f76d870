package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"intervue/internal/speech"
)

var sayCmd = &cobra.Command{
	Use:   "say <text>",
	Short: "Synthesize text to speech",
	Long:  "Say converts text to spoken audio through ElevenLabs. With --out the MP3 is written to a file; otherwise it plays through the system audio player.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := buildLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.ElevenLabsKey == "" {
			return fmt.Errorf("speech requires an ElevenLabs key (elevenlabs-key in config or INTERVUE_ELEVENLABS_KEY)")
		}

		text := strings.Join(args, " ")
		client := speech.NewClient(cfg.ElevenLabsKey)

		outPath, _ := cmd.Flags().GetString("out")
		if outPath == "" {
			speech.NewSpeaker(client, log).Speak(cmd.Context(), text, cfg.Language)
			return nil
		}

		audio, err := client.Synthesize(cmd.Context(), text, cfg.Language)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath, audio, 0o644); err != nil {
			return fmt.Errorf("write audio file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", len(audio), outPath)
		return nil
	},
}

func init() {
	sayCmd.Flags().StringP("out", "o", "", "write MP3 audio to a file instead of playing it")
}
