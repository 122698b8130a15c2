package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cannadex/cannadex-go/internal/models"
)

func TestBattles_StatusGoesIntoPath(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		respond(t, w, http.StatusOK, `{"success":true,"data":[]}`)
	}))
	ctx := context.Background()

	_, err := client.Battles(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "/battles", gotPath)

	_, err = client.Battles(ctx, models.BattleStatusPending)
	require.NoError(t, err)
	assert.Equal(t, "/battles/pending", gotPath)
}

func TestAcceptBattle_SendsLineup(t *testing.T) {
	var gotPath string
	var gotBody map[string][]int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &gotBody))
		respond(t, w, http.StatusOK, `{"success":true,"data":{"id":9,"status":"active"}}`)
	}))

	battle, err := client.AcceptBattle(context.Background(), 9, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "/battles/9/accept", gotPath)
	assert.Equal(t, []int64{1, 2, 3}, gotBody["strain_ids"])
	assert.Equal(t, models.BattleStatusActive, battle.Status)
}

func TestCancelBattle(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		respond(t, w, http.StatusOK, `{"success":true}`)
	}))

	require.NoError(t, client.CancelBattle(context.Background(), 9))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/battles/9/cancel", gotPath)
}
