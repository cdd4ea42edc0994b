package db

import "time"

// SearchLog records a directory search query for later review
type SearchLog struct {
	ID           int       `json:"id"`
	Query        string    `json:"query"`
	ResultsCount int       `json:"results_count"`
	CreatedAt    time.Time `json:"created_at"`
}
