// Package remedy owns the natural-remedies catalog: the record model, its
// PostgreSQL store, the built-in seed catalog, and the HTTP handlers.
package remedy

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"herbwise/internal/imageprompt"
)

// Remedy is one catalog record. IDs are stable slugs (e.g.
// "ginger-turmeric-tea") so regenerated images can target the same row.
type Remedy struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	TraditionalName   string   `json:"traditional_name,omitempty"`
	Category          string   `json:"category"`
	Tags              []string `json:"tags"`
	ConditionTreated  []string `json:"condition_treated"`
	Ingredients       []string `json:"ingredients"`
	PreparationSteps  []string `json:"preparation_steps"`
	Dosage            string   `json:"dosage,omitempty"`
	Frequency         string   `json:"frequency,omitempty"`
	Duration          string   `json:"duration,omitempty"`
	WhyItHelps        string   `json:"why_it_helps,omitempty"`
	HowItWorks        string   `json:"how_it_works,omitempty"`
	EvidenceLevel     string   `json:"evidence_level,omitempty"`
	SafetyWarnings    []string `json:"safety_warnings"`
	Contraindications []string `json:"contraindications"`
	PregnancySafe     bool     `json:"pregnancy_safe"`
	Region            string   `json:"region,omitempty"`
	ImageURL          string   `json:"image_url,omitempty"`
	Rating            float64  `json:"rating"`
}

// Descriptor reduces the record to the triple the prompt synthesizer needs.
func (r Remedy) Descriptor() imageprompt.Descriptor {
	return imageprompt.Descriptor{
		Name:        r.Name,
		Ingredients: r.Ingredients,
		Category:    r.Category,
	}
}

// Store reads and writes remedy catalog rows.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const remedyColumns = `id, name, traditional_name, category, tags, condition_treated,
	ingredients, preparation_steps, dosage, frequency, duration, why_it_helps,
	how_it_works, evidence_level, safety_warnings, contraindications,
	pregnancy_safe, region, image_url, rating`

func scanRemedy(row pgx.Row) (Remedy, error) {
	var r Remedy
	err := row.Scan(
		&r.ID, &r.Name, &r.TraditionalName, &r.Category, &r.Tags, &r.ConditionTreated,
		&r.Ingredients, &r.PreparationSteps, &r.Dosage, &r.Frequency, &r.Duration,
		&r.WhyItHelps, &r.HowItWorks, &r.EvidenceLevel, &r.SafetyWarnings,
		&r.Contraindications, &r.PregnancySafe, &r.Region, &r.ImageURL, &r.Rating,
	)
	return r, err
}

// List returns the whole catalog ordered by name.
func (s *Store) List(ctx context.Context) ([]Remedy, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+remedyColumns+` FROM natural_remedies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list remedies: %w", err)
	}
	defer rows.Close()

	var remedies []Remedy
	for rows.Next() {
		r, err := scanRemedy(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan remedy: %w", err)
		}
		remedies = append(remedies, r)
	}
	return remedies, rows.Err()
}

// GetByID fetches a single record. Returns pgx.ErrNoRows when absent.
func (s *Store) GetByID(ctx context.Context, id string) (Remedy, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+remedyColumns+` FROM natural_remedies WHERE id = $1`, id)
	return scanRemedy(row)
}

// Categories returns the distinct category names in the catalog.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT DISTINCT category FROM natural_remedies ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// UpdateImageURL moves a record's image pointer to a newly stored object.
func (s *Store) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE natural_remedies SET image_url = $1, updated_at = now() WHERE id = $2`,
		imageURL, id)
	if err != nil {
		return fmt.Errorf("failed to update image url for %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("remedy %s not found", id)
	}
	return nil
}

// Upsert inserts or replaces one catalog row, keyed on the slug ID.
func (s *Store) Upsert(ctx context.Context, r Remedy) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO natural_remedies (`+remedyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			traditional_name = EXCLUDED.traditional_name,
			category = EXCLUDED.category,
			tags = EXCLUDED.tags,
			condition_treated = EXCLUDED.condition_treated,
			ingredients = EXCLUDED.ingredients,
			preparation_steps = EXCLUDED.preparation_steps,
			dosage = EXCLUDED.dosage,
			frequency = EXCLUDED.frequency,
			duration = EXCLUDED.duration,
			why_it_helps = EXCLUDED.why_it_helps,
			how_it_works = EXCLUDED.how_it_works,
			evidence_level = EXCLUDED.evidence_level,
			safety_warnings = EXCLUDED.safety_warnings,
			contraindications = EXCLUDED.contraindications,
			pregnancy_safe = EXCLUDED.pregnancy_safe,
			region = EXCLUDED.region,
			rating = EXCLUDED.rating,
			updated_at = now()`,
		r.ID, r.Name, r.TraditionalName, r.Category, r.Tags, r.ConditionTreated,
		r.Ingredients, r.PreparationSteps, r.Dosage, r.Frequency, r.Duration,
		r.WhyItHelps, r.HowItWorks, r.EvidenceLevel, r.SafetyWarnings,
		r.Contraindications, r.PregnancySafe, r.Region, r.ImageURL, r.Rating)
	if err != nil {
		return fmt.Errorf("failed to upsert remedy %s: %w", r.ID, err)
	}
	return nil
}
