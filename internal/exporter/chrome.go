package exporter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"spectralcli/internal/chart"
	"spectralcli/internal/files"
)

// ChromeBackend renders figures with plotly.js inside a headless Chrome
// driven over the DevTools protocol
type ChromeBackend struct {
	// URL is the DevTools endpoint of a running browser, e.g.
	// ws://127.0.0.1:9222. It is ignored when Launch is set.
	URL string
	// Launch starts a private headless browser instead of connecting to URL
	Launch    bool
	Timeout   time.Duration
	PlotlyURL string
	Width     int
	Height    int

	logger *slog.Logger
}

// NewChromeBackend creates a backend connecting to url
func NewChromeBackend(url, plotlyURL string, timeout time.Duration, logger *slog.Logger) *ChromeBackend {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChromeBackend{
		URL:       url,
		Timeout:   timeout,
		PlotlyURL: plotlyURL,
		Width:     1200,
		Height:    700,
		logger:    logger,
	}
}

// RenderImage draws fig in the browser, exports it with Plotly.toImage and
// writes the decoded image to path
func (b *ChromeBackend) RenderImage(ctx context.Context, fig *chart.Figure, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var doc bytes.Buffer
	if err := chart.WriteHTML(&doc, fig, b.PlotlyURL); err != nil {
		return err
	}

	if b.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.Timeout)
		defer cancel()
	}

	allocCtx, cancelAlloc := b.allocator(ctx)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	start := time.Now()
	var dataURL string
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		setDocumentContent(doc.String()),
		waitForPlot(),
		chromedp.Evaluate(toImageExpr(format, b.Width, b.Height), &dataURL, awaitPromise),
	)
	if err != nil {
		return fmt.Errorf("chrome render via %s: %w", b.endpoint(), err)
	}

	data, err := decodeDataURL(dataURL)
	if err != nil {
		return err
	}

	manager := files.NewManager(filepath.Dir(path))
	if _, err := manager.WriteBytes(filepath.Base(path), data); err != nil {
		return err
	}

	b.logger.DebugContext(ctx, "Rendered static image",
		slog.String("path", path),
		slog.String("format", format),
		slog.Int("bytes", len(data)),
		slog.Duration("duration", time.Since(start)))
	return nil
}

func (b *ChromeBackend) allocator(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.Launch {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
		)
		return chromedp.NewExecAllocator(ctx, opts...)
	}
	return chromedp.NewRemoteAllocator(ctx, b.URL)
}

func (b *ChromeBackend) endpoint() string {
	if b.Launch {
		return "launched browser"
	}
	return b.URL
}

func setDocumentContent(html string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		tree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
	})
}

func waitForPlot() chromedp.Action {
	var ready bool
	expr := fmt.Sprintf(`typeof window.Plotly !== "undefined" && document.querySelector("#%s .main-svg") !== null`, chart.DivID)
	return chromedp.Poll(expr, &ready, chromedp.WithPollingInterval(100*time.Millisecond))
}

func toImageExpr(format string, width, height int) string {
	return fmt.Sprintf(`Plotly.toImage(document.getElementById(%q), {format: %q, width: %d, height: %d})`,
		chart.DivID, format, width, height)
}

func awaitPromise(p *runtime.EvaluateParams) *runtime.EvaluateParams {
	return p.WithAwaitPromise(true)
}
