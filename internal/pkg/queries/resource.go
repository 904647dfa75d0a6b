package queries

const (
	FindAllResources = `
		SELECT id, slug, title, category, summary, body, duration_minutes
		FROM resources
		ORDER BY category, title
	`

	FindResourcesByCategory = `
		SELECT id, slug, title, category, summary, body, duration_minutes
		FROM resources
		WHERE category = $1
		ORDER BY title
	`

	FindResourceBySlug = `
		SELECT id, slug, title, category, summary, body, duration_minutes
		FROM resources
		WHERE slug = $1
	`
)
