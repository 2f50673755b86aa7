package websearch

// Result is a single organic search hit returned by the search backend.
type Result struct {
	Title   string
	Link    string
	Snippet string
}

type searchRequest struct {
	Q string `json:"q"`
}

type organicResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type searchResponse struct {
	Organic []organicResult `json:"organic"`
}
