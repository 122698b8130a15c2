package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/cannadex/cannadex-go/internal/api"
	"github.com/cannadex/cannadex-go/internal/models"
	"github.com/cannadex/cannadex-go/internal/storage"
)

// LogEncounter records a new strain encounter. When offline, the client
// queues the request and the journal catches up on the next sync.
func (a *App) LogEncounter(ctx context.Context) error {
	strainID, err := GetInt(a.reader, "Strain id", a.out)
	if err != nil {
		return err
	}
	taste, err := GetRating(a.reader, "Taste rating (1-5)", a.out)
	if err != nil {
		return err
	}
	smell, err := GetRating(a.reader, "Smell rating (1-5)", a.out)
	if err != nil {
		return err
	}
	texture, err := GetRating(a.reader, "Texture rating (1-5)", a.out)
	if err != nil {
		return err
	}
	overall, err := GetRating(a.reader, "Overall rating (1-5)", a.out)
	if err != nil {
		return err
	}
	potency, err := GetRating(a.reader, "Potency rating (1-5)", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return err
	}

	encounter, err := a.client.CreateEncounter(ctx, models.CreateEncounterData{
		StrainID:      strainID,
		TasteRating:   taste,
		SmellRating:   smell,
		TextureRating: texture,
		OverallRating: overall,
		PotencyRating: potency,
		Description:   description,
	})
	if err != nil {
		var netErr *api.NetworkError
		if errors.As(err, &netErr) && netErr.Queued {
			printlnFn("Offline: encounter queued, it will upload on next sync")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Logged encounter #%d\n", encounter.ID)
	a.tracker.EncounterCreated(ctx, strainID, overall)
	return nil
}

// Encounters lists the user's journal, cache-first like Strains.
func (a *App) Encounters(ctx context.Context) error {
	if encounters, ok, err := a.store.CachedEncounters(storage.DefaultEncountersMaxAge); err == nil && ok {
		a.printEncounters(encounters)
		return nil
	}

	encounters, err := a.client.Encounters(ctx, models.EncounterFilters{})
	if err != nil {
		var netErr *api.NetworkError
		if errors.As(err, &netErr) {
			if cached, ok, cerr := a.store.CachedEncounters(anyAge); cerr == nil && ok {
				printlnFn("(offline, showing cached data)")
				a.printEncounters(cached)
				return nil
			}
		}
		return err
	}

	if err := a.store.SetCachedEncounters(encounters); err != nil {
		a.log.Warn(ctx, "caching encounters failed", "error", err)
	}
	a.printEncounters(encounters)
	return nil
}

func (a *App) printEncounters(encounters []models.Encounter) {
	if len(encounters) == 0 {
		printlnFn("No encounters yet, use 'log' to record one")
		return
	}
	for _, e := range encounters {
		name := fmt.Sprintf("strain %d", e.StrainID)
		if e.Strain != nil {
			name = e.Strain.Name
		}
		fmt.Fprintf(a.out, "#%d %s overall %d/5 %s\n", e.ID, name, e.OverallRating, e.EncounteredAt)
	}
}
