// Package agent implements the extraction-agent collaborator: given a target
// URL and a task description it drives a headless browser and returns the raw
// page text for the normalizer to make sense of.
package agent

import (
	"context"
	"fmt"
	"time"

	"restaurant-scout/utils"

	"github.com/chromedp/chromedp"
)

// Extractor is the collaborator contract the pipeline depends on. Extract
// returns raw unstructured text; it may return partial text alongside an
// error when a deadline cut the visit short.
type Extractor interface {
	Extract(ctx context.Context, targetURL, task string, timeout time.Duration) (string, error)
}

// BrowserAgent extracts page text with a headless Chrome instance
type BrowserAgent struct {
	logger      *utils.Logger
	rateLimiter *utils.RateLimiter
	maxRetries  int
	settleDelay time.Duration
}

// NewBrowserAgent creates a BrowserAgent. rateDelayMs paces page visits,
// maxRetries bounds navigation attempts per call.
func NewBrowserAgent(logger *utils.Logger, rateDelayMs, maxRetries int) *BrowserAgent {
	return &BrowserAgent{
		logger:      logger,
		rateLimiter: utils.NewRateLimiter(rateDelayMs),
		maxRetries:  maxRetries,
		settleDelay: 4 * time.Second,
	}
}

// newBrowserContext creates a fresh chromedp context (one browser, one tab)
func (a *BrowserAgent) newBrowserContext(parent context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("log-level", "3"),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		chromedp.WindowSize(1280, 900),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}
	return ctx, cancel
}

// Extract visits the target URL and returns the rendered page text. The task
// description is logged for traceability; structure recovery is the
// normalizer's job, not the browser's.
func (a *BrowserAgent) Extract(ctx context.Context, targetURL, task string, timeout time.Duration) (string, error) {
	a.rateLimiter.Wait()
	a.logger.Debug("Extraction task: %.80s...", task)

	callCtx, cancelTimeout := context.WithTimeout(ctx, timeout)
	defer cancelTimeout()

	browserCtx, cancel := a.newBrowserContext(callCtx)
	defer cancel()

	var text string
	err := utils.RetryWithBackoff(a.maxRetries, func() error {
		if navErr := chromedp.Run(browserCtx,
			chromedp.Navigate(targetURL),
			chromedp.Sleep(a.settleDelay), // give JS time to render
		); navErr != nil {
			return fmt.Errorf("navigate failed: %w", navErr)
		}

		if evalErr := chromedp.Run(browserCtx, chromedp.Evaluate(
			`document.body ? document.body.innerText : ''`, &text,
		)); evalErr != nil {
			return fmt.Errorf("page text extraction failed: %w", evalErr)
		}
		if text == "" {
			return fmt.Errorf("page rendered empty at %s", targetURL)
		}
		return nil
	}, a.logger)

	// Whatever text was captured before a deadline is still worth parsing.
	return text, err
}
