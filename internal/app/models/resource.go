package models

// Resource is a self-help library item: a breathing exercise, grounding
// technique or educational guide served read-only to the app.
type Resource struct {
	ID              string `json:"id"`
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	Category        string `json:"category"`
	Summary         string `json:"summary"`
	Body            string `json:"body"`
	DurationMinutes int    `json:"duration_minutes"`
}
