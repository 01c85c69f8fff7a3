package session

// FlashcardState is the deck cursor.
type FlashcardState struct {
	Index    int
	Revealed bool
}

// NextCard advances to the following card, wrapping to 0, and hides the
// answer. A non-positive size leaves f unchanged.
func NextCard(f FlashcardState, size int) FlashcardState {
	if size <= 0 {
		return f
	}
	return FlashcardState{Index: (f.Index + 1) % size}
}

// PrevCard moves to the preceding card, wrapping to size-1, and hides the
// answer.
func PrevCard(f FlashcardState, size int) FlashcardState {
	if size <= 0 {
		return f
	}
	return FlashcardState{Index: ((f.Index-1)%size + size) % size}
}

// ToggleReveal flips answer visibility.
func ToggleReveal(f FlashcardState) FlashcardState {
	f.Revealed = !f.Revealed
	return f
}
