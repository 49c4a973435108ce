package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/f3rmion/wishcard/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in card themes",
	Long: `List the theme ids accepted by --theme, with the typography each one
pairs with by default and its decoration style.`,
	Args: cobra.NoArgs,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
	addOutputFlags(themesCmd)
}

type themeRow struct {
	ID         string `json:"id" yaml:"id"`
	Typography string `json:"typography" yaml:"typography"`
	Decoration string `json:"decoration" yaml:"decoration"`
	Texture    string `json:"texture,omitempty" yaml:"texture,omitempty"`
	Accent     string `json:"accent" yaml:"accent"`
}

func runThemes(cmd *cobra.Command, args []string) error {
	format, err := structuredFormat(cmd)
	if err != nil {
		return err
	}

	cat := theme.DefaultCatalog()
	var rows []themeRow
	for _, id := range cat.IDs() {
		th, _ := cat.Lookup(id)
		a := th.Background.Accent
		rows = append(rows, themeRow{
			ID:         id,
			Typography: th.Typography.ID,
			Decoration: string(th.DecorationStyle()),
			Texture:    th.Background.Texture,
			Accent:     fmt.Sprintf("#%02x%02x%02x", a.R, a.G, a.B),
		})
	}

	out := cmd.OutOrStdout()
	if format != "" {
		return writeStructured(out, format, rows)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPOGRAPHY\tDECORATION\tACCENT\tTEXTURE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Typography, r.Decoration, r.Accent, r.Texture)
	}
	return tw.Flush()
}
