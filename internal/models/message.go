package models

// MessageResponse carries a human readable outcome, e.g. after a delete
type MessageResponse struct {
	Message string `json:"message"`
}

// Endpoint is one entry of the sitemap served at /
type Endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// SitemapResponse lists every registered endpoint
type SitemapResponse struct {
	Endpoints []Endpoint `json:"endpoints"`
}
