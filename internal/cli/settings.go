package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cannadex/cannadex-go/internal/models"
)

// Settings shows the current preferences, or updates one of them when
// called as "settings <name> <value>".
func (a *App) Settings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		settings, err := a.store.Settings()
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "theme: %s\nnotifications: %t\nlocation_sharing: %t\nanalytics: %t\n",
			settings.Theme, settings.Notifications, settings.LocationSharing, settings.Analytics)
		return nil
	}
	if len(args) != 2 {
		printlnFn("Usage: settings [<name> <value>]")
		return nil
	}

	var patch models.SettingsPatch
	switch args[0] {
	case "theme":
		switch args[1] {
		case "light", "dark", "system":
			patch.Theme = &args[1]
		default:
			return fmt.Errorf("theme must be light, dark or system")
		}
	case "notifications", "location_sharing", "analytics":
		v, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("value must be true or false")
		}
		switch args[0] {
		case "notifications":
			patch.Notifications = &v
		case "location_sharing":
			patch.LocationSharing = &v
		case "analytics":
			patch.Analytics = &v
		}
	default:
		return fmt.Errorf("unknown setting: %s", args[0])
	}

	settings, err := a.store.UpdateSettings(patch)
	if err != nil {
		return err
	}
	if patch.Analytics != nil {
		a.tracker.SetEnabled(settings.Analytics)
	}
	printlnFn("Saved")
	return nil
}

// Stats shows the personal dashboard.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.client.UserStats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "level %d (%d XP)\nencounters: %d across %d strains\nbattles: %d won / %d lost (%.0f%%)\nfriends: %d\n",
		stats.Level, stats.ExperiencePoints,
		stats.TotalEncounters, stats.UniqueStrains,
		stats.BattlesWon, stats.BattlesLost, stats.WinRate*100,
		stats.FriendsCount)
	return nil
}

// Sync drains the offline queue right now instead of waiting for the
// background loop.
func (a *App) Sync(ctx context.Context) error {
	if err := a.coord.PerformSync(ctx); err != nil {
		return err
	}
	last, err := a.store.LastSync()
	if err != nil {
		return err
	}
	n, err := a.store.QueueLen()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Last sync %s, %d items still queued\n", last.Format("15:04:05"), n)
	return nil
}
