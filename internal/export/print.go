package export

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/f3rmion/wishcard/internal/card"
)

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  @page { size: {{.PageWidth}} {{.PageHeight}}; margin: 0; }
  html, body { margin: 0; padding: 0; background: #fff; }
  body { display: flex; align-items: center; justify-content: center; height: 100vh; }
  img { width: 100%; height: 100%; object-fit: contain; display: block; }
  .caption { position: absolute; left: -9999px; }
</style>
</head>
<body>
  <img src="{{.Src}}" alt="{{.Title}}">
  <p class="caption">{{.Message}}</p>
</body>
</html>
`))

type printData struct {
	Title      string
	Message    string
	Src        template.URL
	PageWidth  string
	PageHeight string
}

// PrintDocument returns a print-ready HTML page holding the artifact image
// sized to one physical card.
func PrintDocument(a Artifact, content card.CardContent) ([]byte, error) {
	w, h := "5in", "5in"
	if a.Aspect == card.AspectStory {
		w, h = "4.5in", "8in"
	}

	var buf bytes.Buffer
	err := printTemplate.Execute(&buf, printData{
		Title:      content.Title,
		Message:    content.Message,
		Src:        template.URL(a.DataURL()),
		PageWidth:  w,
		PageHeight: h,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering print document: %w", err)
	}
	return buf.Bytes(), nil
}

// PDFPrinter turns print documents into PDF through a headless browser.
type PDFPrinter struct {
	Timeout     time.Duration
	ExecPath    string // Browser binary; empty lets chromedp search
	AllocatorFn func(ctx context.Context) (context.Context, context.CancelFunc)
}

// NewPDFPrinter returns a printer with a one minute timeout.
func NewPDFPrinter() *PDFPrinter {
	return &PDFPrinter{Timeout: time.Minute}
}

func (p *PDFPrinter) allocator(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.AllocatorFn != nil {
		return p.AllocatorFn(ctx)
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
	)
	if p.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(p.ExecPath))
	}
	return chromedp.NewExecAllocator(ctx, opts...)
}

// Print loads html into a blank page and prints it to PDF.
func (p *PDFPrinter) Print(ctx context.Context, html []byte) ([]byte, error) {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	allocCtx, cancelAlloc := p.allocator(ctx)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return fmt.Errorf("getting frame tree: %w", err)
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.WaitReady("img"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return fmt.Errorf("printing to pdf: %w", err)
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf bridge: %w", err)
	}
	return pdf, nil
}
