package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/wishcard/internal/card"
	"github.com/f3rmion/wishcard/internal/clipboard"
	"github.com/f3rmion/wishcard/internal/export"
	"github.com/f3rmion/wishcard/internal/preview"
	"github.com/f3rmion/wishcard/internal/session"
)

var cardsCmd = &cobra.Command{
	Use:   "cards <prompt>",
	Short: "Render greeting cards from a description",
	Long: `Render the three card variations for a description and save them as
images. Each variation has its own title, layout and theme.

Examples:
  wishcard cards "Luxury birthday invitation for 50th birthday"
  wishcard cards --aspect story --variation 2 "funny graduation poster"
  wishcard cards --tone heartfelt --theme rose-garden --pdf "anniversary card for my parents"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCards,
}

var (
	cardsAspect    string
	cardsOut       string
	cardsVariation int
	cardsTone      string
	cardsTheme     string
	cardsPrint     bool
	cardsPDF       bool
	cardsCopy      bool
	cardsPreview   bool
)

func init() {
	rootCmd.AddCommand(cardsCmd)
	cardsCmd.Flags().StringVarP(&cardsAspect, "aspect", "a", "", "square or story (default from config)")
	cardsCmd.Flags().StringVarP(&cardsOut, "out", "o", "", "output directory (default from config)")
	cardsCmd.Flags().IntVarP(&cardsVariation, "variation", "n", 0, "render only this variation (1-3)")
	cardsCmd.Flags().StringVarP(&cardsTone, "tone", "t", "", "override the detected tone")
	cardsCmd.Flags().StringVar(&cardsTheme, "theme", "", "use this theme for every variation (see 'wishcard themes')")
	cardsCmd.Flags().BoolVar(&cardsPrint, "print", false, "also write a print-ready HTML page per card")
	cardsCmd.Flags().BoolVar(&cardsPDF, "pdf", false, "also write a PDF per card (needs Chrome or Chromium)")
	cardsCmd.Flags().BoolVar(&cardsCopy, "copy", false, "copy the first card's path to the clipboard")
	cardsCmd.Flags().BoolVar(&cardsPreview, "preview", false, "draw each card in the terminal")
	addOutputFlags(cardsCmd)
}

func runCards(cmd *cobra.Command, args []string) error {
	format, err := structuredFormat(cmd)
	if err != nil {
		return err
	}

	if cardsCopy && !clipboard.Available() {
		return fmt.Errorf("--copy: %w (install wl-copy, xclip or xsel)", clipboard.ErrUnavailable)
	}

	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	s, err := session.New(strings.Join(args, " "), app.pipeline.Resolver())
	if err != nil {
		return err
	}
	if cardsTone != "" {
		if err := s.ChangeTone(card.ToneType(strings.ToLower(cardsTone))); err != nil {
			return err
		}
	}
	if cardsTheme != "" {
		if err := s.OverrideTheme(cardsTheme); err != nil {
			return err
		}
	}

	aspectName := cardsAspect
	if aspectName == "" {
		aspectName = app.cfg.Render.Aspect
	}
	aspect := card.ParseAspect(aspectName)

	var jobs []export.Job
	if cardsVariation != 0 {
		job, err := s.Job(cardsVariation-1, aspect)
		if err != nil {
			return err
		}
		jobs = append(jobs, job)
	} else {
		jobs = s.Jobs(aspect)
	}

	ctx := cmd.Context()
	arts, err := app.pipeline.RenderAll(ctx, jobs)
	if err != nil {
		return err
	}

	sink := app.sink(cardsOut)
	results := make([]cardResult, 0, len(arts))
	for i, a := range arts {
		var dst export.Sink = sink
		if cardsCopy && i == 0 {
			dst = export.ClipboardSink{Then: sink}
		}
		loc, err := dst.Deliver(ctx, a)
		if err != nil {
			return err
		}
		r := cardResult{Artifact: a, Path: loc}

		if cardsPrint || cardsPDF {
			if r.Print, r.PDF, err = writePrintable(cmd, a, loc); err != nil {
				return err
			}
		}
		results = append(results, r)
	}

	out := cmd.OutOrStdout()
	if format != "" {
		return writeStructured(out, format, results)
	}

	for i, r := range results {
		fmt.Fprintf(out, "Variation %d  %s  %s\n", r.Variation+1, r.Theme, r.Path)
		fmt.Fprintf(out, "  %s\n  %s\n  %s\n", r.Content.Title, r.Content.Message, r.Content.Footer)
		if r.Print != "" {
			fmt.Fprintf(out, "  print: %s\n", r.Print)
		}
		if r.PDF != "" {
			fmt.Fprintf(out, "  pdf:   %s\n", r.PDF)
		}
		if cardsPreview {
			img, err := app.pipeline.Preview(ctx, jobs[i], 160)
			if err != nil {
				return err
			}
			b := img.Bounds()
			fmt.Fprintln(out, preview.Render(img, 40, preview.Rows(b.Dx(), b.Dy(), 40), preview.Color))
		}
		if cardsCopy && i == 0 {
			fmt.Fprintln(out, "  (path copied to clipboard)")
		}
	}
	return nil
}

// cardResult is one exported card as reported to the user.
type cardResult struct {
	export.Artifact `yaml:",inline"`
	Path            string `json:"path" yaml:"path"`
	Print           string `json:"print,omitempty" yaml:"print,omitempty"`
	PDF             string `json:"pdf,omitempty" yaml:"pdf,omitempty"`
}

// writePrintable writes the print page and PDF beside the image at loc.
func writePrintable(cmd *cobra.Command, a export.Artifact, loc string) (htmlPath, pdfPath string, err error) {
	doc, err := export.PrintDocument(a, a.Content)
	if err != nil {
		return "", "", err
	}
	base := strings.TrimSuffix(loc, filepath.Ext(loc))

	if cardsPrint {
		htmlPath = base + ".html"
		if err := os.WriteFile(htmlPath, doc, 0644); err != nil {
			return "", "", fmt.Errorf("writing print page: %w", err)
		}
	}
	if cardsPDF {
		pdf, err := export.NewPDFPrinter().Print(cmd.Context(), doc)
		if err != nil {
			return "", "", err
		}
		pdfPath = base + ".pdf"
		if err := os.WriteFile(pdfPath, pdf, 0644); err != nil {
			return "", "", fmt.Errorf("writing pdf: %w", err)
		}
	}
	return htmlPath, pdfPath, nil
}
