package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed data/*.json data/guide.md
var dataFS embed.FS

// Library bundles the read-only course material loaded at startup.
type Library struct {
	Bank  *Bank
	Deck  *Deck
	Guide string
	Topic string
}

// DefaultTopic names the unit the embedded material covers.
const DefaultTopic = "Unit 5: Revolutions and Industrialization"

type bankEntry struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Correct     string   `json:"correct"`
	Explanation string   `json:"explanation"`
}

type deckEntry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Load reads the embedded bank, deck and study guide.
func Load() (*Library, error) {
	var rawBank []bankEntry
	if err := readJSON("data/bank.json", &rawBank); err != nil {
		return nil, err
	}
	items, err := decodeBank(rawBank)
	if err != nil {
		return nil, err
	}
	bank, err := NewBank(items)
	if err != nil {
		return nil, err
	}

	var rawDeck []deckEntry
	if err := readJSON("data/deck.json", &rawDeck); err != nil {
		return nil, err
	}
	cards := make([]Flashcard, len(rawDeck))
	for i, e := range rawDeck {
		cards[i] = Flashcard{Term: e.Term, Definition: e.Definition}
	}
	deck, err := NewDeck(cards)
	if err != nil {
		return nil, err
	}

	guide, err := dataFS.ReadFile("data/guide.md")
	if err != nil {
		return nil, fmt.Errorf("read study guide: %w", err)
	}

	return &Library{Bank: bank, Deck: deck, Guide: string(guide), Topic: DefaultTopic}, nil
}

func readJSON(name string, v any) error {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func decodeBank(raw []bankEntry) ([]QuizItem, error) {
	items := make([]QuizItem, len(raw))
	for i, e := range raw {
		if len(e.Options) != OptionCount {
			return nil, fmt.Errorf("bank item %d: expected %d options, got %d", i, OptionCount, len(e.Options))
		}
		l := Letter(strings.ToUpper(strings.TrimSpace(e.Correct)))
		if !l.Valid() {
			return nil, fmt.Errorf("bank item %d: correct letter %q not in A-D", i, e.Correct)
		}
		it := QuizItem{Prompt: e.Prompt, Correct: l, Explanation: e.Explanation}
		copy(it.Options[:], e.Options)
		items[i] = it
	}
	return items, nil
}
