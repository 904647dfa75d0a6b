package responses

type Resource struct {
	ID              string `json:"id"`
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	Category        string `json:"category"`
	Summary         string `json:"summary"`
	Body            string `json:"body,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
}
