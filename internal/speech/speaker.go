package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

// Synthesizer produces audio bytes for a piece of text.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}

// Speaker speaks text out loud, best-effort. Synthesis or playback
// failures are logged and swallowed so the interview keeps moving.
type Speaker struct {
	synth  Synthesizer
	play   func(path string) error
	logger *zap.Logger
}

// NewSpeaker creates a Speaker. A nil synth disables speech entirely.
func NewSpeaker(synth Synthesizer, logger *zap.Logger) *Speaker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Speaker{synth: synth, play: playFile, logger: logger}
}

// Enabled reports whether speech output is configured.
func (s *Speaker) Enabled() bool {
	return s != nil && s.synth != nil
}

// Speak synthesizes and plays text. Never returns an error.
func (s *Speaker) Speak(ctx context.Context, text, language string) {
	if !s.Enabled() {
		return
	}

	audio, err := s.synth.Synthesize(ctx, text, language)
	if err != nil {
		s.logger.Warn("speech synthesis failed", zap.Error(err))
		return
	}

	f, err := os.CreateTemp("", "intervue-*.mp3")
	if err != nil {
		s.logger.Warn("write speech audio", zap.Error(err))
		return
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(audio); err != nil {
		f.Close()
		s.logger.Warn("write speech audio", zap.Error(err))
		return
	}
	f.Close()

	if err := s.play(f.Name()); err != nil {
		s.logger.Warn("audio playback failed", zap.Error(err))
	}
}

// playFile plays an audio file with the first available system player.
func playFile(path string) error {
	for _, player := range []string{"mpv", "mpg123", "ffplay", "afplay"} {
		bin, err := exec.LookPath(player)
		if err != nil {
			continue
		}
		args := []string{path}
		if player == "ffplay" {
			args = []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}
		}
		return exec.Command(bin, args...).Run()
	}
	return fmt.Errorf("no audio player found")
}
