package analysis

import (
	"fmt"
	"strings"

	"intervue/internal/catalog"
	"intervue/internal/interview"
)

const answerSystemPrompt = "You are an AI assistant that responds only with clean JSON, no markdown formatting or explanation text."

const finalSystemPrompt = "You are an expert interviewer providing analysis in clean JSON format only. Do not include markdown formatting or explanation text."

// buildAnswerPrompt asks the backend to evaluate one answer, demanding a
// bare JSON object.
func buildAnswerPrompt(in AnalyzeInput) string {
	if in.Language == "es" {
		return fmt.Sprintf(`Como entrevistador experto y coach de carrera, evalúa la siguiente respuesta:

Posición: %s
Nivel: %s
Pregunta: %s
Respuesta: %s

Proporciona una evaluación con el siguiente formato JSON, sin markdown ni backticks:
{
  "score": (número del 0-100, considera el nivel de dificultad %s),
  "strengths": ["fortaleza 1", "fortaleza 2"],
  "improvements": ["mejora 1", "mejora 2"],
  "overallFeedback": "retroalimentación general"
}

Importante: Responde SOLO con el JSON, sin texto adicional, sin `+"```json"+` ni otros formatos.`,
			in.Career.Label.ES, in.Difficulty.Label.ES, in.Question, in.Answer, in.Difficulty.Label.ES)
	}

	return fmt.Sprintf(`As an expert interviewer and career coach, evaluate the following response:

Position: %s
Level: %s
Question: %s
Answer: %s

Provide an evaluation in the following JSON format, without markdown or backticks:
{
  "score": (number from 0-100, consider the difficulty level %s),
  "strengths": ["strength 1", "strength 2"],
  "improvements": ["improvement 1", "improvement 2"],
  "overallFeedback": "overall feedback"
}

Important: Respond ONLY with the JSON, no additional text, no `+"```json"+` or other formatting.`,
		in.Career.Label.EN, in.Difficulty.Label.EN, in.Question, in.Answer, in.Difficulty.Label.EN)
}

// buildFinalPrompt asks the backend for the session report. The computed
// average, themes, category, and counts are embedded so the narrative
// stays anchored to the authoritative local numbers.
func buildFinalPrompt(s *interview.Session, lang string, avg int, strengths, improvements []string, category catalog.Category) string {
	completed := s.AnsweredCount()

	if lang == "es" {
		var b strings.Builder
		b.WriteString("Analiza la siguiente sesión de entrevista y proporciona un resumen detallado. Responde SOLO con el JSON solicitado, sin markdown ni backticks:\n\n")
		fmt.Fprintf(&b, "Posición: %s\n", s.Career.Label.ES)
		fmt.Fprintf(&b, "Nivel: %s\n", s.Difficulty.Label.ES)
		fmt.Fprintf(&b, "Puntuación promedio: %d%%\n", avg)
		fmt.Fprintf(&b, "Fortalezas principales: %s\n", strings.Join(strengths, ", "))
		fmt.Fprintf(&b, "Áreas de mejora principales: %s\n\n", strings.Join(improvements, ", "))
		b.WriteString("Preguntas y respuestas:\n")
		writeTranscript(&b, s, "Pregunta", "Respuesta", "Puntuación", "No contestada")
		b.WriteString("\nProporciona el siguiente JSON:\n")
		writeFinalTemplate(&b, avg, s.Difficulty.QuestionsCount, completed, category,
			`"área fuerte 1", "área fuerte 2", "área fuerte 3"`,
			`"área a mejorar 1", "área a mejorar 2", "área a mejorar 3"`,
			"retroalimentación detallada aquí")
		return b.String()
	}

	var b strings.Builder
	b.WriteString("Analyze the following interview session and provide a detailed summary. Respond ONLY with the requested JSON, no markdown or backticks:\n\n")
	fmt.Fprintf(&b, "Position: %s\n", s.Career.Label.EN)
	fmt.Fprintf(&b, "Level: %s\n", s.Difficulty.Label.EN)
	fmt.Fprintf(&b, "Average Score: %d%%\n", avg)
	fmt.Fprintf(&b, "Main Strengths: %s\n", strings.Join(strengths, ", "))
	fmt.Fprintf(&b, "Main Improvement Areas: %s\n\n", strings.Join(improvements, ", "))
	b.WriteString("Questions and Answers:\n")
	writeTranscript(&b, s, "Question", "Answer", "Score", "Not answered")
	b.WriteString("\nProvide the following JSON:\n")
	writeFinalTemplate(&b, avg, s.Difficulty.QuestionsCount, completed, category,
		`"strong area 1", "strong area 2", "strong area 3"`,
		`"improvement area 1", "improvement area 2", "improvement area 3"`,
		"detailed feedback here")
	return b.String()
}

func writeTranscript(b *strings.Builder, s *interview.Session, qLabel, aLabel, scoreLabel, unanswered string) {
	for i, q := range s.Questions {
		answer := q.Answer
		if answer == "" {
			answer = unanswered
		}
		score := 0
		if q.Analysis != nil {
			score = q.Analysis.Score
		}
		fmt.Fprintf(b, "\n%s %d: %s\n%s: %s\n%s: %d%%\n", qLabel, i+1, q.Text, aLabel, answer, scoreLabel, score)
	}
}

func writeFinalTemplate(b *strings.Builder, avg, total, completed int, category catalog.Category, strongPlaceholder, improvePlaceholder, feedbackPlaceholder string) {
	fmt.Fprintf(b, `{
  "averageScore": %d,
  "totalQuestions": %d,
  "completedQuestions": %d,
  "strongAreas": [%s],
  "improvementAreas": [%s],
  "overallFeedback": "%s",
  "scoreCategory": "%s"
}`, avg, total, completed, strongPlaceholder, improvePlaceholder, feedbackPlaceholder, category)
}
