package questiongen

import "github.com/abhisek/studyhub/internal/llm"

// QuestionSchema is the structured reply requested from the model.
var QuestionSchema = &llm.Schema{
	Name:        "history-question",
	Description: "One multiple-choice history question with four options and an explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question stem shown to the student",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly four options in order A, B, C, D, e.g. \"A. The Congress of Vienna\"",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The letter of the single correct option: A, B, C or D",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "One or two sentences on why the answer is correct",
			},
		},
		"required":             []any{"question", "options", "answer", "explanation"},
		"additionalProperties": false,
	},
}
