package mq

// RecommendationEvent is emitted after a pipeline run completes, for
// downstream analytics consumers.
type RecommendationEvent struct {
	ProfileId    string   `json:"profile_id"`
	Nickname     string   `json:"nickname"`
	Occasion     string   `json:"occasion"`
	BudgetMin    int64    `json:"budget_min"`
	BudgetMax    int64    `json:"budget_max"`
	Keywords     []string `json:"keywords"`
	ProductCount int      `json:"product_count"`
	Stage        string   `json:"stage"`
	Timestamp    int64    `json:"timestamp"`
}
