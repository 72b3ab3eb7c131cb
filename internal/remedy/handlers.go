package remedy

import (
	"net/http"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var store *Store

// InitRemedyPackage prepares the package for operation by configuring the
// catalog store.
func InitRemedyPackage(pool *pgxpool.Pool) {
	store = NewStore(pool)
	log.Info().Msg("Remedy package initialized.")
}

// CatalogStore exposes the package store so other packages (image
// generation, admin batch) can target catalog rows.
func CatalogStore() *Store {
	return store
}

// LibraryResponse is the payload for the remedies library page.
type LibraryResponse struct {
	Remedies   []Remedy `json:"remedies"`
	Categories []string `json:"categories"`
	// Source is "database" or "local" so clients can tell whether they are
	// looking at live rows or the built-in fallback catalog.
	Source string `json:"source"`
}

// ListRemediesHandler handles GET /remedies. Remedies and the category
// list are fetched concurrently; when the database is empty or
// unreachable the built-in seed catalog is served instead, so the library
// never renders blank.
func ListRemediesHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		remedies   []Remedy
		categories []string
		mu         sync.Mutex
	)

	g, grpCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rs, err := store.List(grpCtx)
		if err != nil {
			return err
		}
		mu.Lock()
		remedies = rs
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		cs, err := store.Categories(grpCtx)
		if err != nil {
			return err
		}
		mu.Lock()
		categories = cs
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Warn().Err(err).Msg("Catalog query failed, serving local fallback")
		return c.JSON(http.StatusOK, localLibrary())
	}

	if len(remedies) == 0 {
		return c.JSON(http.StatusOK, localLibrary())
	}

	return c.JSON(http.StatusOK, LibraryResponse{
		Remedies:   remedies,
		Categories: categories,
		Source:     "database",
	})
}

func localLibrary() LibraryResponse {
	seen := make(map[string]bool)
	var categories []string
	for _, r := range SeedCatalog {
		if !seen[r.Category] {
			seen[r.Category] = true
			categories = append(categories, r.Category)
		}
	}
	return LibraryResponse{
		Remedies:   SeedCatalog,
		Categories: categories,
		Source:     "local",
	}
}

// GetRemedyHandler handles GET /remedies/:remedy_id.
func GetRemedyHandler(c echo.Context) error {
	ctx := c.Request().Context()

	r, err := store.GetByID(ctx, c.Param("remedy_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Remedy not found"})
	}

	return c.JSON(http.StatusOK, r)
}

// SeedRemediesHandler handles POST /remedies/seed: it upserts the built-in
// catalog into the database, keyed on the slug ID.
func SeedRemediesHandler(c echo.Context) error {
	ctx := c.Request().Context()

	log.Info().Msg("Starting to seed remedies data...")

	seeded := 0
	for _, r := range SeedCatalog {
		if err := store.Upsert(ctx, r); err != nil {
			log.Error().Err(err).Str("remedy", r.Name).Msg("Failed to upsert remedy")
			continue
		}
		seeded++
	}

	if seeded == 0 {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to seed remedies"})
	}

	log.Info().Int("count", seeded).Msg("Seeding completed")

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Seeded remedies successfully",
		"count":   seeded,
	})
}
