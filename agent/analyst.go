// Package agent talks to Gemini to review the futures trade journal.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/findash/findash"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Analyst asks Gemini for a structured review of closed trades.
type Analyst struct {
	client *genai.Client
	model  string
}

// NewAnalyst creates the Gemini client. An empty apiKey lets the genai client
// resolve credentials from the environment itself.
func NewAnalyst(ctx context.Context, apiKey string) (*Analyst, error) {
	var config *genai.ClientConfig
	if apiKey != "" {
		config = &genai.ClientConfig{APIKey: apiKey}
	}
	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize Gemini client: %w", err)
	}
	return &Analyst{client: client, model: model}, nil
}

// analysisSchema constrains the model to the TradeAnalysis JSON shape, so the
// reply parses without prose around it.
var analysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"overallSummary":        {Type: genai.TypeString, Description: "A concise summary of the overall trading performance."},
		"keyStrengths":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"areasForImprovement":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"actionableSuggestions": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"bestTrade":             tradeReviewSchema,
		"worstTrade":            tradeReviewSchema,
	},
	Required: []string{"overallSummary", "keyStrengths", "areasForImprovement", "actionableSuggestions", "bestTrade", "worstTrade"},
}

var tradeReviewSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"pair":   {Type: genai.TypeString},
		"pnl":    {Type: genai.TypeNumber},
		"reason": {Type: genai.TypeString},
	},
	Required: []string{"pair", "pnl", "reason"},
}

// Analyze reviews the closed trades of the journal. Open trades are excluded
// before anything leaves the process; a journal with no closed trades is
// refused with an EmptyInputError without any network call.
func (a *Analyst) Analyze(ctx context.Context, trades []findash.FuturesTrade) (findash.TradeAnalysis, error) {
	var closed []findash.FuturesTrade
	for _, t := range trades {
		if t.Status == findash.Closed {
			closed = append(closed, t)
		}
	}
	if len(closed) == 0 {
		return findash.TradeAnalysis{}, &findash.EmptyInputError{Op: "trade analysis"}
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   analysisSchema,
	}
	resp, err := a.client.Models.GenerateContent(ctx, a.model,
		genai.Text(buildPrompt(closed)), config)
	if err != nil {
		return findash.TradeAnalysis{}, &findash.UpstreamError{Source: "gemini", Err: err}
	}

	text := resp.Text()
	var analysis findash.TradeAnalysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		return findash.TradeAnalysis{}, &findash.UpstreamError{
			Source: "gemini",
			Err:    fmt.Errorf("malformed analysis %q: %w", text, err),
		}
	}
	return analysis, nil
}

// buildPrompt renders the closed trades as one line each for the model.
func buildPrompt(closed []findash.FuturesTrade) string {
	var sb strings.Builder
	sb.WriteString("You are a seasoned futures trading coach. Review this journal of closed trades\n")
	sb.WriteString("and respond with the requested JSON analysis.\n\n")
	for _, t := range closed {
		fmt.Fprintf(&sb, "- %s %s %s: entry %s, exit %s, size %s, pnl %s\n",
			t.Date, t.Pair, t.Type,
			t.EntryPrice.Decimal(), t.ExitPrice.Decimal(), t.Size.Decimal(), t.PnL.Decimal())
	}
	return sb.String()
}
