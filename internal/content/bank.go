package content

import "fmt"

// Rand is the subset of *rand.Rand the bank needs.
type Rand interface {
	IntN(n int) int
}

// Bank is an immutable, ordered collection of quiz items.
type Bank struct {
	items []QuizItem
}

// NewBank validates items and returns a bank holding a copy of them.
func NewBank(items []QuizItem) (*Bank, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("bank item %d: %w", i, err)
		}
	}
	return &Bank{items: append([]QuizItem(nil), items...)}, nil
}

// Size returns the number of items.
func (b *Bank) Size() int { return len(b.items) }

// ItemAt returns the item at index i.
func (b *Bank) ItemAt(i int) (QuizItem, error) {
	if i < 0 || i >= len(b.items) {
		return QuizItem{}, fmt.Errorf("bank item %d of %d: %w", i, len(b.items), ErrInvalidIndex)
	}
	return b.items[i], nil
}

// RandomItem draws one item uniformly.
func (b *Bank) RandomItem(r Rand) QuizItem {
	return b.items[r.IntN(len(b.items))]
}

// Sample returns min(k, Size()) distinct items in random order. Every
// k-subset is equally likely.
func (b *Bank) Sample(r Rand, k int) []QuizItem {
	idx := sampleIndices(r, len(b.items), k)
	out := make([]QuizItem, len(idx))
	for i, j := range idx {
		out[i] = b.items[j]
	}
	return out
}

// Deck is an immutable, ordered collection of flashcards.
type Deck struct {
	cards []Flashcard
}

// NewDeck validates cards and returns a deck holding a copy of them.
func NewDeck(cards []Flashcard) (*Deck, error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("flashcard deck is empty")
	}
	for i, c := range cards {
		if c.Term == "" || c.Definition == "" {
			return nil, fmt.Errorf("flashcard %d: missing term or definition", i)
		}
	}
	return &Deck{cards: append([]Flashcard(nil), cards...)}, nil
}

// Size returns the number of cards.
func (d *Deck) Size() int { return len(d.cards) }

// CardAt returns the card at index i.
func (d *Deck) CardAt(i int) (Flashcard, error) {
	if i < 0 || i >= len(d.cards) {
		return Flashcard{}, fmt.Errorf("flashcard %d of %d: %w", i, len(d.cards), ErrInvalidIndex)
	}
	return d.cards[i], nil
}

// sampleIndices runs a partial Fisher-Yates shuffle over [0, n) and returns
// the first min(k, n) positions.
func sampleIndices(r Rand, n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.IntN(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm[:k]
}
