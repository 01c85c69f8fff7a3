package questiongen

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const systemPrompt = `You are an expert AP World History: Modern teacher writing exam-style multiple-choice questions.

Rules:
- Write exactly one difficult question grounded in the study material provided.
- Give exactly 4 options labelled A, B, C and D. Exactly one option is correct.
- Distractors must be plausible to a student who half-remembers the material.
- "answer" is the letter of the correct option only.
- The explanation is one or two sentences and names the key fact.
- Do not repeat or rephrase any question from the "already asked" list.`

// buildUserMessage constructs the user message from the request and limits.
func buildUserMessage(req Request, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)

	b.WriteString("\nStudy material:\n")
	b.WriteString(truncateRunes(req.Context, cfg.MaxContextChars))

	b.WriteString("\n\nAlready asked in this session:\n")
	b.WriteString(buildDedup(req.Prior, cfg.MaxPriorQuestions))

	b.WriteString("\n\nReturn JSON with keys: question, options, answer, explanation.")
	return b.String()
}

// buildDedup formats prior prompts, keeping the most recent max entries.
// Returns "None" when there are none.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}

// truncateRunes keeps at most n characters of s. n <= 0 keeps everything.
func truncateRunes(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
