package dto

// Listing is one searchable NSE equity entry.
type Listing struct {
	Ticker      string `json:"ticker"`
	CompanyName string `json:"company_name"`
}

// SearchResponse is the autocomplete payload.
type SearchResponse struct {
	Query   string    `json:"query"`
	Results []Listing `json:"results"`
	Count   int       `json:"count"`
}

// StocksResponse lists every known equity.
type StocksResponse struct {
	Stocks []Listing `json:"stocks"`
	Count  int       `json:"count"`
}

// ValidateResponse reports whether a ticker is a known NSE listing.
type ValidateResponse struct {
	Valid       bool   `json:"valid"`
	Ticker      string `json:"ticker"`
	CompanyName string `json:"company_name,omitempty"`
	Message     string `json:"message,omitempty"`
}

// WatchlistAddRequest adds one ticker to the caller's watchlist.
type WatchlistAddRequest struct {
	Ticker string `json:"ticker"`
}

// WatchlistAddResponse confirms a watchlist insertion.
type WatchlistAddResponse struct {
	Message     string `json:"message"`
	Ticker      string `json:"ticker"`
	CompanyName string `json:"company_name"`
}

// WatchlistEntry is one watched ticker.
type WatchlistEntry struct {
	Ticker      string `json:"ticker"`
	CompanyName string `json:"company_name"`
	AddedAt     string `json:"added_at"`
}

// WatchlistResponse is the caller's full watchlist.
type WatchlistResponse struct {
	Watchlist []WatchlistEntry `json:"watchlist"`
	Count     int              `json:"count"`
}

// WatchlistRemoveResponse confirms a watchlist removal.
type WatchlistRemoveResponse struct {
	Message string `json:"message"`
	Ticker  string `json:"ticker"`
}

// ChatRequest is one chat message. Context optionally carries the caller's
// dashboard snapshot so answers stay consistent with what is on screen.
type ChatRequest struct {
	Message   string          `json:"message"`
	SessionID string          `json:"session_id,omitempty"`
	Context   *AnalysisResult `json:"context,omitempty"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
