package questiongen

import "time"

// Config controls the behavior of RemoteSource.
type Config struct {
	// Validators run in order on every generated item; the first failure
	// rejects it.
	Validators []Validator

	MaxTokens   int
	Temperature float64

	// MaxPriorQuestions caps the "already asked" list sent in the prompt.
	MaxPriorQuestions int

	// MaxContextChars caps the study material excerpt.
	MaxContextChars int

	// Timeout bounds the remote call. Zero disables the local deadline.
	Timeout time.Duration
}

// DefaultConfig returns the standard validator chain and defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&DistinctOptionsValidator{},
			&NoRepeatValidator{},
		},
		MaxTokens:         700,
		Temperature:       0.9,
		MaxPriorQuestions: 8,
		MaxContextChars:   7000,
		Timeout:           20 * time.Second,
	}
}
