package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizcard/internal/quiz"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		showAnswers, _ := cmd.Flags().GetBool("answers")
		out := cmd.OutOrStdout()

		bank := quiz.DefaultBank()

		// Header.
		fmt.Fprintf(out, "%-3s  %-44s  %s\n", "ID", "Prompt", "Options")
		fmt.Fprintln(out, strings.Repeat("─", 100))

		for _, q := range bank.Questions() {
			prompt := q.Prompt
			if len(prompt) > 44 {
				prompt = prompt[:41] + "..."
			}
			opts := make([]string, len(q.Options))
			for i, o := range q.Options {
				if showAnswers && o == q.CorrectAnswer {
					o = "*" + o
				}
				opts[i] = o
			}
			fmt.Fprintf(out, "%-3d  %-44s  %s\n", q.ID, prompt, strings.Join(opts, " | "))
		}

		fmt.Fprintf(out, "\n%d questions\n", bank.Len())
		return nil
	},
}

func init() {
	questionsCmd.Flags().Bool("answers", false, "Mark the correct answer with *")
}
