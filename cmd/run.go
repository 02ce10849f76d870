package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"intervue/internal/analysis"
	"intervue/internal/catalog"
	"intervue/internal/interview"
	"intervue/internal/llm"
	"intervue/internal/question"
	"intervue/internal/speech"
	"intervue/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interview session",
	RunE:  runInterview,
}

func init() {
	runCmd.Flags().StringP("career", "c", "", "career ID (see 'intervue careers')")
	runCmd.Flags().String("difficulty", "", "difficulty ID: beginner, intermediate, or advanced")
	runCmd.Flags().Bool("no-speech", false, "disable spoken questions even when an ElevenLabs key is configured")
}

func runInterview(cmd *cobra.Command, args []string) error {
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
	lang := cfg.Language

	provider, err := llm.NewProvider(ctx, cfg.LLM(), log)
	if err != nil {
		return err
	}

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	career, err := selectCareer(cmd, in, out, lang)
	if err != nil {
		return err
	}
	difficulty, err := selectDifficulty(cmd, in, out, lang)
	if err != nil {
		return err
	}

	// History persistence is best-effort: a broken database must not
	// block the interview itself.
	var history interview.History
	dbPath, err := resolveDBPath(cfg)
	if err == nil {
		st, err := store.Open(dbPath)
		if err != nil {
			log.Warn("session history unavailable", zap.Error(err))
		} else {
			defer st.Close()
			history = st.Sessions()
		}
	} else {
		log.Warn("session history unavailable", zap.Error(err))
	}

	var speaker *speech.Speaker
	noSpeech, _ := cmd.Flags().GetBool("no-speech")
	if cfg.ElevenLabsKey != "" && !noSpeech {
		speaker = speech.NewSpeaker(speech.NewClient(cfg.ElevenLabsKey), log)
	}

	machine := interview.NewMachine(interview.Options{
		Generator:  question.New(provider, question.NewDedupSet(), question.DefaultConfig()),
		Analyzer:   analysis.NewAnalyzer(provider, analysis.DefaultConfig()),
		Aggregator: analysis.NewAggregator(provider, analysis.DefaultConfig()),
		History:    history,
		Language:   lang,
		Logger:     log,
	})

	if err := machine.Start(career, difficulty); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s: %s — %s\n", tr(lang, "Interview", "Entrevista"),
		career.Label.Text(lang), difficulty.Label.Text(lang))
	fmt.Fprintf(out, tr(lang,
		"%d questions. Aim for about %d minutes per answer (advisory only). Answers need at least %d characters.\n",
		"%d preguntas. Intenta responder en unos %d minutos (solo orientativo). Las respuestas necesitan al menos %d caracteres.\n"),
		difficulty.QuestionsCount, difficulty.TimePerQuestion, difficulty.MinimumAnswerLength)

	for machine.State() == interview.StateAwaitingQuestion {
		number := len(machine.Session().Questions) + 1

		q, err := machine.NextQuestion(ctx)
		if err != nil {
			if errors.Is(err, question.ErrExhausted) {
				return err
			}
			fmt.Fprintf(out, "\n%s: %v\n", tr(lang, "Question generation failed", "Falló la generación de la pregunta"), err)
			if !confirm(in, out, tr(lang, "Retry?", "¿Reintentar?")) {
				return err
			}
			continue
		}

		timer := interview.StartAdvisoryTimer(time.Duration(difficulty.TimePerQuestion)*time.Minute, func() {
			fmt.Fprintf(out, "\n⏱  %s\n", tr(lang,
				"Suggested time is up. Take the time you need; nothing is cut off.",
				"El tiempo sugerido terminó. Tómate el tiempo que necesites; nada se corta."))
		})

		fmt.Fprintf(out, "\n%s %d/%d:\n  %s\n", tr(lang, "Question", "Pregunta"),
			number, difficulty.QuestionsCount, q.Text)
		if speaker.Enabled() {
			speaker.Speak(ctx, q.Text, lang)
		}

		for machine.State() == interview.StateAwaitingAnswer {
			fmt.Fprintf(out, "\n%s\n> ", tr(lang,
				"Your answer (finish with an empty line):",
				"Tu respuesta (termina con una línea vacía):"))
			answer, err := readAnswer(in)
			if err != nil {
				timer.Stop()
				return err
			}

			result, err := machine.SubmitAnswer(ctx, answer)
			if err != nil {
				var short *analysis.ErrAnswerTooShort
				if errors.As(err, &short) {
					fmt.Fprintf(out, tr(lang,
						"Answer too short: at least %d characters are required. Try again.\n",
						"Respuesta demasiado corta: se requieren al menos %d caracteres. Inténtalo de nuevo.\n"),
						short.Minimum)
					continue
				}
				fmt.Fprintf(out, "\n%s: %v\n", tr(lang, "Analysis failed", "Falló el análisis"), err)
				if !confirm(in, out, tr(lang, "Enter the answer again?", "¿Escribir la respuesta de nuevo?")) {
					timer.Stop()
					return err
				}
				continue
			}

			printAnswerFeedback(out, lang, result)
		}
		timer.Stop()
	}

	fmt.Fprintf(out, "\n%s\n", tr(lang,
		"All questions answered. Press Enter for your final report.",
		"Todas las preguntas respondidas. Presiona Enter para tu informe final."))
	in.ReadString('\n')

	var final *interview.FinalAnalysis
	for {
		final, err = machine.Finalize(ctx)
		if err == nil {
			break
		}
		fmt.Fprintf(out, "\n%s: %v\n", tr(lang, "Report generation failed", "Falló la generación del informe"), err)
		if !confirm(in, out, tr(lang, "Retry?", "¿Reintentar?")) {
			return err
		}
	}

	printFinalReport(out, lang, machine.Session(), final)
	if speaker.Enabled() {
		speaker.Speak(ctx, final.OverallFeedback, lang)
	}
	return nil
}

// tr picks en or es.
func tr(lang, en, es string) string {
	if lang == "es" {
		return es
	}
	return en
}

func selectCareer(cmd *cobra.Command, in *bufio.Reader, out io.Writer, lang string) (catalog.Career, error) {
	if id, _ := cmd.Flags().GetString("career"); id != "" {
		return catalog.GetCareer(id)
	}

	careers := catalog.Careers()
	fmt.Fprintf(out, "\n%s:\n", tr(lang, "Choose a career", "Elige una carrera"))
	for i, c := range careers {
		fmt.Fprintf(out, "  %2d. %s (%s)\n", i+1, c.Label.Text(lang), c.Category.Text(lang))
	}
	idx, err := readIndex(in, out, lang, len(careers))
	if err != nil {
		return catalog.Career{}, err
	}
	return careers[idx], nil
}

func selectDifficulty(cmd *cobra.Command, in *bufio.Reader, out io.Writer, lang string) (catalog.Difficulty, error) {
	if id, _ := cmd.Flags().GetString("difficulty"); id != "" {
		return catalog.GetDifficulty(id)
	}

	difficulties := catalog.Difficulties()
	fmt.Fprintf(out, "\n%s:\n", tr(lang, "Choose a difficulty", "Elige una dificultad"))
	for i, d := range difficulties {
		fmt.Fprintf(out, "  %2d. %s — %s\n", i+1, d.Label.Text(lang),
			fmt.Sprintf(tr(lang, "%d questions", "%d preguntas"), d.QuestionsCount))
	}
	idx, err := readIndex(in, out, lang, len(difficulties))
	if err != nil {
		return catalog.Difficulty{}, err
	}
	return difficulties[idx], nil
}

func readIndex(in *bufio.Reader, out io.Writer, lang string, max int) (int, error) {
	for {
		fmt.Fprintf(out, "%s [1-%d]: ", tr(lang, "Number", "Número"), max)
		line, err := in.ReadString('\n')
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= max {
			return n - 1, nil
		}
		fmt.Fprintln(out, tr(lang, "Invalid choice.", "Opción inválida."))
	}
}

// readAnswer collects lines until an empty line. Leading and trailing
// whitespace around the whole answer is kept as typed; the gate trims it.
func readAnswer(in *bufio.Reader) (string, error) {
	var lines []string
	for {
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == "" {
			break
		}
		lines = append(lines, trimmed)
		if errors.Is(err, io.EOF) {
			break
		}
	}
	return strings.Join(lines, "\n"), nil
}

func confirm(in *bufio.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	line, err := in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes" || answer == "s" || answer == "si" || answer == "sí"
}

func printAnswerFeedback(out io.Writer, lang string, a *interview.AnswerAnalysis) {
	fmt.Fprintf(out, "\n%s: %d/100\n", tr(lang, "Score", "Puntuación"), a.Score)
	if len(a.Strengths) > 0 {
		fmt.Fprintf(out, "%s:\n", tr(lang, "Strengths", "Fortalezas"))
		for _, s := range a.Strengths {
			fmt.Fprintf(out, "  + %s\n", s)
		}
	}
	if len(a.Improvements) > 0 {
		fmt.Fprintf(out, "%s:\n", tr(lang, "Improvements", "Mejoras"))
		for _, s := range a.Improvements {
			fmt.Fprintf(out, "  - %s\n", s)
		}
	}
	if a.OverallFeedback != "" {
		fmt.Fprintf(out, "%s: %s\n", tr(lang, "Feedback", "Retroalimentación"), a.OverallFeedback)
	}
}

func printFinalReport(out io.Writer, lang string, s *interview.Session, final *interview.FinalAnalysis) {
	sep := strings.Repeat("─", 60)
	fmt.Fprintf(out, "\n%s\n%s\n%s\n", sep, tr(lang, "FINAL REPORT", "INFORME FINAL"), sep)
	fmt.Fprintf(out, "%s: %s — %s\n", tr(lang, "Interview", "Entrevista"),
		s.Career.Label.Text(lang), s.Difficulty.Label.Text(lang))
	fmt.Fprintf(out, "%s: %d%% (%s)\n", tr(lang, "Average score", "Puntuación media"),
		final.AverageScore, categoryLabel(lang, final.ScoreCategory))
	fmt.Fprintf(out, "%s: %d/%d\n", tr(lang, "Questions completed", "Preguntas completadas"),
		final.CompletedQuestions, final.TotalQuestions)

	if len(final.StrongAreas) > 0 {
		fmt.Fprintf(out, "\n%s:\n", tr(lang, "Strong areas", "Áreas fuertes"))
		for _, a := range final.StrongAreas {
			fmt.Fprintf(out, "  + %s\n", a)
		}
	}
	if len(final.ImprovementAreas) > 0 {
		fmt.Fprintf(out, "\n%s:\n", tr(lang, "Areas to improve", "Áreas a mejorar"))
		for _, a := range final.ImprovementAreas {
			fmt.Fprintf(out, "  - %s\n", a)
		}
	}
	fmt.Fprintf(out, "\n%s\n", final.OverallFeedback)
}

func categoryLabel(lang string, c catalog.Category) string {
	switch c {
	case catalog.CategoryExcellent:
		return tr(lang, "excellent", "excelente")
	case catalog.CategoryGood:
		return tr(lang, "good", "bueno")
	case catalog.CategoryAverage:
		return tr(lang, "average", "promedio")
	default:
		return tr(lang, "needs work", "necesita trabajo")
	}
}
