// Package ai wraps the external generative-text service behind three
// advisory flows: restock suggestions, sales commentary and receipt
// taglines. The service is strictly advisory — every failure path
// (missing key, network error, timeout) degrades to a static fallback
// string and never reaches the operator as an error.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"saripos/internal/models"
)

// Advisory calls are raced against this deadline; the context is
// cancelled when it fires, so the underlying request actually stops.
const requestTimeout = 8 * time.Second

const (
	fallbackRestock    = "Restock suggestion unavailable right now. Review the low-stock list and reorder your fastest movers first."
	fallbackCommentary = "Sales commentary unavailable right now. Check the reports tab for today's totals."
	fallbackTagline    = "Thank you for shopping with us!"
)

// Advisor talks to the generative text API. A zero-key advisor is
// valid: every flow immediately returns its fallback.
type Advisor struct {
	apiKey string
	model  string
}

func New(apiKey, model string) *Advisor {
	return &Advisor{apiKey: apiKey, model: model}
}

// Enabled reports whether an API key is configured.
func (a *Advisor) Enabled() bool { return a.apiKey != "" }

// RestockAdvice asks for a short reorder recommendation based on the
// current low-stock list.
func (a *Advisor) RestockAdvice(ctx context.Context, low []models.Product) string {
	if len(low) == 0 {
		return "No products are below the low-stock threshold. Nothing to reorder."
	}
	var sb strings.Builder
	for _, p := range low {
		fmt.Fprintf(&sb, "- %s (%s): %d left\n", p.Name, p.Category, p.StockQuantity)
	}
	prompt := fmt.Sprintf(`You are an inventory assistant for a small Philippine sari-sari store.
These products are at or below the low-stock threshold:
%s
In 3 sentences or fewer, suggest which items to reorder first and why.
Plain text only, no markdown, no bullet points.`, sb.String())

	return a.generate(ctx, prompt, fallbackRestock)
}

// SalesCommentary asks for a one-paragraph read on recent takings.
func (a *Advisor) SalesCommentary(ctx context.Context, revenue decimal.Decimal, saleCount int, since time.Time) string {
	prompt := fmt.Sprintf(`You are a retail analyst for a small Philippine sari-sari store.
Since %s the store completed %d sale(s) for a total of PHP %s.
In 3 sentences or fewer, comment on how the store is doing and one thing to watch.
Plain text only, no markdown.`, since.Format("2006-01-02"), saleCount, revenue.StringFixed(2))

	return a.generate(ctx, prompt, fallbackCommentary)
}

// ReceiptTagline asks for a one-line thank-you note to print at the
// bottom of a receipt.
func (a *Advisor) ReceiptTagline(ctx context.Context, storeName string) string {
	prompt := fmt.Sprintf(`Write a single short friendly thank-you line for the bottom of a
receipt from %q, a small Philippine sari-sari store. One sentence,
plain text only, no markdown, no quotation marks, no emoji.`, storeName)

	return a.generate(ctx, prompt, fallbackTagline)
}

func (a *Advisor) generate(ctx context.Context, prompt, fallback string) string {
	if a.apiKey == "" {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		log.Warn().Err(err).Msg("advisory client init failed, using fallback")
		return fallback
	}
	defer client.Close()

	resp, err := client.GenerativeModel(a.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Warn().Err(err).Msg("advisory request failed, using fallback")
		return fallback
	}

	if text := firstText(resp); text != "" {
		return text
	}
	return fallback
}

func firstText(resp *genai.GenerateContentResponse) string {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				return strings.TrimSpace(string(txt))
			}
		}
	}
	return ""
}
