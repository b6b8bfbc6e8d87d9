package findash

// TradeAnalysis is the structured review the AI analyst returns for a closed
// trade journal. Field names follow the JSON shape the analyst is asked to
// produce.
type TradeAnalysis struct {
	OverallSummary        string      `json:"overallSummary"`
	KeyStrengths          []string    `json:"keyStrengths"`
	AreasForImprovement   []string    `json:"areasForImprovement"`
	ActionableSuggestions []string    `json:"actionableSuggestions"`
	BestTrade             TradeReview `json:"bestTrade"`
	WorstTrade            TradeReview `json:"worstTrade"`
}

// TradeReview singles out one trade of the journal with the analyst's reason.
type TradeReview struct {
	Pair   string  `json:"pair"`
	PnL    float64 `json:"pnl"`
	Reason string  `json:"reason"`
}
