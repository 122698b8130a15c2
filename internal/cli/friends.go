package cli

import (
	"context"
	"fmt"
)

// Friends lists accepted friends and any pending incoming requests.
func (a *App) Friends(ctx context.Context) error {
	friends, err := a.client.Friends(ctx)
	if err != nil {
		return err
	}
	if len(friends) == 0 {
		printlnFn("No friends yet")
	}
	for _, f := range friends {
		name := fmt.Sprintf("user %d", f.FriendID)
		if f.Friend != nil {
			name = f.Friend.Username
		}
		fmt.Fprintf(a.out, "%s (since %s)\n", name, f.AcceptedAt)
	}

	requests, err := a.client.FriendRequests(ctx)
	if err != nil {
		return err
	}
	for _, r := range requests {
		name := fmt.Sprintf("user %d", r.UserID)
		if r.User != nil {
			name = r.User.Username
		}
		fmt.Fprintf(a.out, "request #%d from %s\n", r.ID, name)
	}
	return nil
}

// Achievements lists milestones with progress and claimable state.
func (a *App) Achievements(ctx context.Context) error {
	achievements, err := a.client.Achievements(ctx)
	if err != nil {
		return err
	}
	for _, ach := range achievements {
		state := fmt.Sprintf("%d/%d", ach.Progress, ach.Goal)
		if ach.IsClaimed {
			state = "claimed"
		} else if ach.IsUnlocked {
			state = "claimable"
		}
		fmt.Fprintf(a.out, "#%d %s [%s] %s\n", ach.ID, ach.Title, ach.Category, state)
	}
	return nil
}
