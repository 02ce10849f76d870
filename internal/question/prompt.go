package question

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are an expert technical interviewer. Provide only the question without any additional text."

// buildUserMessage constructs the generation prompt in the session language.
func buildUserMessage(in Input) string {
	careerLabel := in.Career.Label.Text(in.Language)
	modifier := in.Difficulty.PromptModifier.Text(in.Language)
	ordinal := len(in.PreviousQuestions) + 1
	total := in.Difficulty.QuestionsCount
	minLen := in.Difficulty.MinimumAnswerLength

	if in.Language == "es" {
		var b strings.Builder
		fmt.Fprintf(&b, "Actúa como un entrevistador experto para un puesto de %s.\n", careerLabel)
		fmt.Fprintf(&b, "%s\n", modifier)
		fmt.Fprintf(&b, "Esta es la pregunta %d de %d.\n\n", ordinal, total)
		b.WriteString("Genera UNA pregunta de entrevista que:\n")
		b.WriteString("1. Sea específica para el nivel de experiencia\n")
		b.WriteString("2. Evalúe habilidades técnicas y soft skills\n")
		b.WriteString("3. Sea diferente a las preguntas anteriores\n")
		fmt.Fprintf(&b, "4. Requiera una respuesta detallada de al menos %d caracteres\n\n", minLen)
		b.WriteString("Preguntas anteriores a evitar:\n")
		b.WriteString(formatPrevious(in.PreviousQuestions))
		b.WriteString("\n\nResponde SOLO con la pregunta, sin numeración, contexto o explicación adicional.")
		return b.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Act as an expert interviewer for a %s position.\n", careerLabel)
	fmt.Fprintf(&b, "%s\n", modifier)
	fmt.Fprintf(&b, "This is question %d of %d.\n\n", ordinal, total)
	b.WriteString("Generate ONE interview question that:\n")
	b.WriteString("1. Is specific to the experience level\n")
	b.WriteString("2. Evaluates both technical and soft skills\n")
	b.WriteString("3. Is different from previous questions\n")
	fmt.Fprintf(&b, "4. Requires a detailed answer of at least %d characters\n\n", minLen)
	b.WriteString("Previous questions to avoid:\n")
	b.WriteString(formatPrevious(in.PreviousQuestions))
	b.WriteString("\n\nRespond ONLY with the question, without numbering, context, or additional explanation.")
	return b.String()
}

func formatPrevious(questions []string) string {
	if len(questions) == 0 {
		return "- (none)"
	}
	var b strings.Builder
	for _, q := range questions {
		fmt.Fprintf(&b, "- %s\n", q)
	}
	return strings.TrimRight(b.String(), "\n")
}
