package session

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/abhisek/studyhub/internal/content"
)

// testBank builds a bank of n items whose correct letter cycles A-D.
func testBank(t *testing.T, n int) *content.Bank {
	t.Helper()
	items := make([]content.QuizItem, n)
	for i := range items {
		l, _ := content.LetterFor(i % content.OptionCount)
		items[i] = content.QuizItem{
			Prompt:      fmt.Sprintf("question %d", i),
			Options:     [content.OptionCount]string{"w", "x", "y", "z"},
			Correct:     l,
			Explanation: fmt.Sprintf("explanation %d", i),
		}
	}
	b, err := content.NewBank(items)
	if err != nil {
		t.Fatalf("new bank: %v", err)
	}
	return b
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1))
}
