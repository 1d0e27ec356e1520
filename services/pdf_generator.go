package services

import (
	"context"
	"fmt"
	"html"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PDFOptions contains options for PDF generation
type PDFOptions struct {
	PageSize     string // letter, legal, A4
	MarginTop    int    // points (72 = 1 inch)
	MarginBottom int
	MarginLeft   int
	MarginRight  int
	ChromePath   string // headless-shell binary, empty for the default lookup
}

// DefaultPDFOptions returns A4 pages with one inch margins
func DefaultPDFOptions(chromePath string) PDFOptions {
	return PDFOptions{
		PageSize:     "A4",
		MarginTop:    72,
		MarginBottom: 72,
		MarginLeft:   72,
		MarginRight:  72,
		ChromePath:   chromePath,
	}
}

// paperSize returns width and height in inches
func (o PDFOptions) paperSize() (float64, float64) {
	switch o.PageSize {
	case "legal":
		return 8.5, 14.0
	case "letter":
		return 8.5, 11.0
	default: // A4
		return 8.27, 11.69
	}
}

// WrapReportHTML embeds the plain-text report in a printable page
func WrapReportHTML(reportText string) string {
	return `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: "Courier New", monospace; font-size: 12pt; line-height: 1.4; }
pre { white-space: pre-wrap; word-wrap: break-word; }
</style>
</head>
<body>` + SanitizeHTML("<pre>"+html.EscapeString(reportText)+"</pre>") + `</body>
</html>`
}

// GenerateReportPDF renders a formatted report to PDF using headless Chrome
func GenerateReportPDF(ctx context.Context, reportText string, options PDFOptions) ([]byte, error) {
	return GeneratePDF(ctx, WrapReportHTML(reportText), options)
}

// GeneratePDF renders HTML content to PDF using headless Chrome
func GeneratePDF(ctx context.Context, htmlContent string, options PDFOptions) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)
	if options.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(options.ChromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	paperWidth, paperHeight := options.paperSize()

	var pdfBuf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(float64(options.MarginTop) / 72.0).
				WithMarginBottom(float64(options.MarginBottom) / 72.0).
				WithMarginLeft(float64(options.MarginLeft) / 72.0).
				WithMarginRight(float64(options.MarginRight) / 72.0).
				WithPrintBackground(true).
				WithDisplayHeaderFooter(false).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfBuf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}
