package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_PersistsSession(t *testing.T) {
	var gotBody map[string]string
	client, sessions := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &gotBody))
		respond(t, w, http.StatusOK,
			`{"success":true,"data":{"token":"t1","refresh_token":"r1","user":{"id":1,"username":"budtender"}}}`)
	}))

	session, err := client.Login(context.Background(), "b@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", gotBody["email"])
	assert.Equal(t, "hunter2", gotBody["password"])

	assert.Equal(t, "t1", session.Token)
	assert.Equal(t, "r1", session.RefreshToken)
	require.NotNil(t, session.User)
	assert.Equal(t, int64(1), session.User.ID)

	assert.Equal(t, "t1", sessions.token)
	assert.Equal(t, "r1", sessions.refresh)
	require.NotNil(t, sessions.user)
	assert.Equal(t, "budtender", sessions.user.Username)
}

func TestLogin_EnvelopeFailure(t *testing.T) {
	client, sessions := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusOK, `{"success":false,"message":"invalid credentials"}`)
	}))

	_, err := client.Login(context.Background(), "b@example.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid credentials", apiErr.Message)
	assert.Empty(t, sessions.token)
}

func TestLogin_MalformedAuthPayload(t *testing.T) {
	client, sessions := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusOK, `{"success":true,"data":{"token":"t1"}}`)
	}))

	_, err := client.Login(context.Background(), "b@example.com", "hunter2")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeRequestFailed, apiErr.Code)
	assert.Empty(t, sessions.token)
}

func TestLogout_ClearsLocalSessionEvenWhenServerFails(t *testing.T) {
	client, sessions := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusServiceUnavailable, `{"success":false}`)
	}))
	sessions.token = "t1"

	err := client.Logout(context.Background())
	require.Error(t, err)
	assert.True(t, sessions.cleared)
	assert.Empty(t, sessions.token)
}

func TestRefreshSession_NoTokenStored(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.RefreshSession(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeUnauthorized, apiErr.Code)
}

func TestRefreshSession_ExchangesToken(t *testing.T) {
	client, sessions := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/refresh", r.URL.Path)
		var body map[string]string
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &body))
		require.Equal(t, "r1", body["refresh_token"])
		respond(t, w, http.StatusOK,
			`{"success":true,"data":{"token":"t2","refresh_token":"r2","user":{"id":1,"username":"budtender"}}}`)
	}))
	sessions.refresh = "r1"

	session, err := client.RefreshSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t2", session.Token)
	assert.Equal(t, "t2", sessions.token)
	assert.Equal(t, "r2", sessions.refresh)
}

func TestVerifyAge(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/verify_age", r.URL.Path)
		respond(t, w, http.StatusOK, `{"success":true,"data":{"age_verified":true}}`)
	}))

	ok, err := client.VerifyAge(context.Background(), "1990-04-20")
	require.NoError(t, err)
	assert.True(t, ok)
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestSessionExpiringSoon(t *testing.T) {
	client, sessions := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	// no token at all counts as expiring
	soon, err := client.SessionExpiringSoon(time.Minute)
	require.NoError(t, err)
	assert.True(t, soon)

	sessions.token = signedToken(t, time.Now().Add(time.Hour))
	soon, err = client.SessionExpiringSoon(time.Minute)
	require.NoError(t, err)
	assert.False(t, soon)

	soon, err = client.SessionExpiringSoon(2 * time.Hour)
	require.NoError(t, err)
	assert.True(t, soon)

	sessions.token = signedToken(t, time.Now().Add(-time.Minute))
	soon, err = client.SessionExpiringSoon(0)
	require.NoError(t, err)
	assert.True(t, soon)

	// opaque tokens never expire client-side
	sessions.token = "not-a-jwt"
	soon, err = client.SessionExpiringSoon(time.Minute)
	require.NoError(t, err)
	assert.False(t, soon)
}
