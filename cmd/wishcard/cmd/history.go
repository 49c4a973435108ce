package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently rendered cards",
	Long: `List cards recorded in the render history, newest first.

Examples:
  wishcard history
  wishcard history --limit 5 --json
  wishcard history rm 3f2a9c1e-...`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyRmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Remove entries from the render history",
	Long:  `Remove entries from the render history. Saved image files are kept.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHistoryRm,
}

var historyLimit int

var errNoHistory = errors.New("render history is disabled")

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyRmCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of entries to show (0 = all)")
	addOutputFlags(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	format, err := structuredFormat(cmd)
	if err != nil {
		return err
	}

	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()
	if app.gallery == nil {
		return errNoHistory
	}

	entries, err := app.gallery.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format != "" {
		return writeStructured(out, format, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No cards rendered yet.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tTHEME\tTITLE\tLOCATION")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.CreatedAt.Format("2006-01-02 15:04"), e.Theme,
			runewidth.Truncate(e.Title, 32, "…"), e.Location)
	}
	return tw.Flush()
}

func runHistoryRm(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()
	if app.gallery == nil {
		return errNoHistory
	}

	for _, id := range args {
		if err := app.gallery.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", id)
	}
	return nil
}
