package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cannadex/cannadex-go/internal/models"
)

func TestUpdateProfile_RefreshesCachedUser(t *testing.T) {
	client, sessions := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/users/me", r.URL.Path)
		respond(t, w, http.StatusOK, `{"success":true,"data":{"id":1,"username":"budtender","bio":"updated"}}`)
	}))
	sessions.token = "t1"
	sessions.refresh = "r1"
	sessions.user = &models.User{ID: 1, Username: "budtender"}

	bio := "updated"
	user, err := client.UpdateProfile(context.Background(), models.UserPatch{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "updated", user.Bio)

	// the locally cached identity follows the server's version
	require.NotNil(t, sessions.user)
	assert.Equal(t, "updated", sessions.user.Bio)
	assert.Equal(t, "t1", sessions.token)
}

func TestUpdateDeviceToken_QueueableOffline(t *testing.T) {
	queue := &fakeQueue{}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
		WithConnectivity(stubChecker(false)), WithOfflineQueue(queue))

	err := client.UpdateDeviceToken(context.Background(), "fcm-abc")
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.True(t, netErr.Queued)
	require.Len(t, queue.items, 1)
	assert.Equal(t, "/users/me", queue.items[0].URL)
}

func TestClaimAchievement_QueueableOffline(t *testing.T) {
	queue := &fakeQueue{}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
		WithConnectivity(stubChecker(false)), WithOfflineQueue(queue))

	_, err := client.ClaimAchievement(context.Background(), 12)
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.True(t, netErr.Queued)
	require.Len(t, queue.items, 1)
	assert.Equal(t, http.MethodPost, queue.items[0].Method)
}
