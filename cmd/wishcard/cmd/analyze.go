package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/wishcard/internal/analyzer"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <prompt>",
	Short: "Show how a card prompt is classified",
	Long: `Classify a card description into event, tone, visual theme and layout,
and list the keywords that matched.

Examples:
  wishcard analyze "Luxury birthday invitation for 50th birthday"
  wishcard analyze --json "funny wedding poster with neon lights"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addOutputFlags(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")
	if err := analyzer.ValidatePrompt(prompt); err != nil {
		return err
	}
	format, err := structuredFormat(cmd)
	if err != nil {
		return err
	}

	a := analyzer.Analyze(prompt)
	out := cmd.OutOrStdout()
	if format != "" {
		return writeStructured(out, format, a)
	}

	fmt.Fprintf(out, "Event:    %s\n", a.EventType)
	fmt.Fprintf(out, "Tone:     %s\n", a.Tone)
	fmt.Fprintf(out, "Visual:   %s\n", a.VisualTheme)
	fmt.Fprintf(out, "Layout:   %s\n", a.LayoutStyle)
	if len(a.Keywords) > 0 {
		fmt.Fprintf(out, "Keywords: %s\n", strings.Join(a.Keywords, ", "))
	}
	return nil
}
