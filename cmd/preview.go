package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyhub/internal/content"
	"github.com/abhisek/studyhub/internal/llm"
	"github.com/abhisek/studyhub/internal/logger"
	"github.com/abhisek/studyhub/internal/questiongen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated questions (developer tool)",
	Long: `Generate and interactively answer questions from the configured LLM.

No session state is kept. Calls are still recorded in the LLM event log,
and transient provider errors are retried. Useful for evaluating question
quality and prompt changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("--count must be at least 1")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Env, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	lib, err := loadLibrary(cfg)
	if err != nil {
		return err
	}
	source, err := buildSource(ctx, cfg, st.EventRepo(), log, true)
	if err != nil {
		return err
	}
	if !source.Available() {
		return fmt.Errorf("no LLM provider configured: set OPENAI_API_KEY or another provider key")
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Printf("Topic: %s\n", lib.Topic)
	fmt.Printf("Generating %d questions...\n\n", count)

	var correct, asked int
	var prior []string

	for i := 1; i <= count; i++ {
		q, err := source.Generate(llm.WithPurpose(ctx, llm.PurposePreview), questiongen.Request{
			Topic:   lib.Topic,
			Context: lib.Guide,
			Prior:   prior,
		})
		if err != nil {
			fmt.Printf("Question %d: generation failed: %v\n\n", i, err)
			continue
		}
		prior = append(prior, q.Prompt)

		fmt.Printf("── Question %d/%d ──\n", i, count)
		fmt.Println(q.Prompt)
		for j, opt := range q.Options {
			l, _ := content.LetterFor(j)
			fmt.Printf("  %s) %s\n", l, opt)
		}

		fmt.Print("\nYour answer (A-D): ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		asked++
		if l, ok := content.ParseLetter(answer); ok && l == q.Correct {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Correct)
		}
		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, asked)
	return nil
}
