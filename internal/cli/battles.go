package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cannadex/cannadex-go/internal/models"
)

// Battles lists pending and active challenges.
func (a *App) Battles(ctx context.Context) error {
	var all []models.Battle
	for _, status := range []string{models.BattleStatusPending, models.BattleStatusActive} {
		battles, err := a.client.Battles(ctx, status)
		if err != nil {
			return err
		}
		all = append(all, battles...)
	}

	if len(all) == 0 {
		printlnFn("No open battles")
		return nil
	}
	for _, b := range all {
		challenger := fmt.Sprintf("user %d", b.ChallengerID)
		if b.Challenger != nil {
			challenger = b.Challenger.Username
		}
		opponent := fmt.Sprintf("user %d", b.OpponentID)
		if b.Opponent != nil {
			opponent = b.Opponent.Username
		}
		fmt.Fprintf(a.out, "#%d %s vs %s [%s] expires %s\n", b.ID, challenger, opponent, b.Status, b.ExpiresAt)
	}
	return nil
}

// Challenge issues a new battle: an opponent and exactly three strains.
func (a *App) Challenge(ctx context.Context) error {
	opponentID, err := GetInt(a.reader, "Opponent user id", a.out)
	if err != nil {
		return err
	}
	picks, err := GetSimpleText(a.reader, "Three strain ids, comma separated", a.out)
	if err != nil {
		return err
	}

	var strainIDs []int64
	for _, part := range strings.Split(picks, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return fmt.Errorf("not a strain id: %q", part)
		}
		strainIDs = append(strainIDs, id)
	}
	if len(strainIDs) != 3 {
		return fmt.Errorf("a battle lineup needs exactly 3 strains, got %d", len(strainIDs))
	}

	battle, err := a.client.CreateBattle(ctx, models.CreateBattleData{
		OpponentID: opponentID,
		Strains:    strainIDs,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Challenge #%d sent, expires %s\n", battle.ID, battle.ExpiresAt)
	a.tracker.BattleCreated(ctx, opponentID)
	return nil
}
