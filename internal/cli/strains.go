package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cannadex/cannadex-go/internal/api"
	"github.com/cannadex/cannadex-go/internal/models"
	"github.com/cannadex/cannadex-go/internal/storage"
)

// anyAge disables the staleness check when stale data beats no data.
const anyAge = time.Duration(math.MaxInt64)

// Strains lists the catalog, serving from the local cache when fresh and
// falling back to it (stale or not) when the network is down.
func (a *App) Strains(ctx context.Context) error {
	if strains, ok, err := a.store.CachedStrains(storage.DefaultStrainsMaxAge); err == nil && ok {
		a.printStrains(strains)
		return nil
	}

	strains, err := a.client.Strains(ctx, models.StrainFilters{})
	if err != nil {
		var netErr *api.NetworkError
		if errors.As(err, &netErr) {
			if cached, ok, cerr := a.store.CachedStrains(anyAge); cerr == nil && ok {
				printlnFn("(offline, showing cached data)")
				a.printStrains(cached)
				return nil
			}
		}
		return err
	}

	if err := a.store.SetCachedStrains(strains); err != nil {
		a.log.Warn(ctx, "caching strains failed", "error", err)
	}
	a.printStrains(strains)
	return nil
}

// Search runs a strain search and records an anonymized analytics event.
func (a *App) Search(ctx context.Context, q string) error {
	strains, err := a.client.SearchStrains(ctx, q)
	if err != nil {
		return err
	}
	a.tracker.SearchPerformed(ctx, q, len(strains))
	if len(strains) == 0 {
		printlnFn("No strains found")
		return nil
	}
	a.printStrains(strains)
	return nil
}

func (a *App) printStrains(strains []models.Strain) {
	for _, s := range strains {
		category := ""
		if s.Category != nil {
			category = " (" + s.Category.Name + ")"
		}
		fmt.Fprintf(a.out, "#%d %s%s THC %.1f%% ★%.1f\n", s.ID, s.Name, category, s.THCPercentage, s.AverageOverallRating)
	}
}
