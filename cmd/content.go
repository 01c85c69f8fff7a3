package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyhub/internal/content"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Browse the built-in question bank",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every bank question",
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, _ := cmd.Flags().GetBool("answers")

		lib, err := content.Load()
		if err != nil {
			return fmt.Errorf("load content: %w", err)
		}

		for i := range lib.Bank.Size() {
			q, err := lib.Bank.ItemAt(i)
			if err != nil {
				return err
			}
			fmt.Printf("%2d. %s\n", i+1, q.Prompt)
			for j, opt := range q.Options {
				l, _ := content.LetterFor(j)
				mark := " "
				if answers && l == q.Correct {
					mark = "*"
				}
				fmt.Printf("   %s%s) %s\n", mark, l, opt)
			}
			if answers {
				fmt.Printf("    %s\n", q.Explanation)
			}
			fmt.Println()
		}
		fmt.Printf("%d questions\n", lib.Bank.Size())
		return nil
	},
}

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Browse the flashcard deck",
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every flashcard",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := content.Load()
		if err != nil {
			return fmt.Errorf("load content: %w", err)
		}

		width := 0
		for i := range lib.Deck.Size() {
			c, _ := lib.Deck.CardAt(i)
			width = max(width, len(c.Term))
		}
		width = min(width, 40)

		fmt.Printf("%-4s  %-*s  %s\n", "#", width, "Term", "Definition")
		fmt.Println(strings.Repeat("─", width+50))
		for i := range lib.Deck.Size() {
			c, err := lib.Deck.CardAt(i)
			if err != nil {
				return err
			}
			fmt.Printf("%-4d  %-*s  %s\n", i+1, width, truncate(c.Term, width), c.Definition)
		}
		return nil
	},
}

func init() {
	bankListCmd.Flags().Bool("answers", false, "Show correct answers and explanations")

	bankCmd.AddCommand(bankListCmd)
	deckCmd.AddCommand(deckListCmd)
}
