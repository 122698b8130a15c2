package api

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cannadex/cannadex-go/internal/models"
)

func TestStrains_EncodesFilters(t *testing.T) {
	var gotQuery url.Values
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/strains", r.URL.Path)
		gotQuery = r.URL.Query()
		respond(t, w, http.StatusOK, `{"success":true,"data":[]}`)
	}))

	_, err := client.Strains(context.Background(), models.StrainFilters{
		Search:       "haze",
		Effects:      []string{"uplifted", "creative"},
		THCMin:       15,
		VerifiedOnly: true,
		SortBy:       "rating",
		SortOrder:    "desc",
		Page:         2,
		Limit:        25,
	})
	require.NoError(t, err)

	assert.Equal(t, "haze", gotQuery.Get("search"))
	assert.Equal(t, []string{"uplifted", "creative"}, gotQuery["effects"])
	assert.Equal(t, "15", gotQuery.Get("thc_min"))
	assert.Equal(t, "true", gotQuery.Get("verified_only"))
	assert.Equal(t, "rating", gotQuery.Get("sort_by"))
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "25", gotQuery.Get("limit"))
}

func TestStrains_ZeroFiltersSendNoQuery(t *testing.T) {
	var gotRawQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		respond(t, w, http.StatusOK, `{"success":true,"data":[]}`)
	}))

	_, err := client.Strains(context.Background(), models.StrainFilters{})
	require.NoError(t, err)
	assert.Empty(t, gotRawQuery)
}

func TestStrains_ValidationFailure(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusUnprocessableEntity, `{"success":false,"errors":{"search":["too short"]}}`)
	}))

	_, err := client.Strains(context.Background(), models.StrainFilters{Search: "B"})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, []string{"too short"}, valErr.Errors["search"])
}

func TestStrainEndpoints_Paths(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		if r.URL.Path == "/strains/7" {
			respond(t, w, http.StatusOK, `{"success":true,"data":{"id":7,"name":"Gelato"}}`)
			return
		}
		respond(t, w, http.StatusOK, `{"success":true,"data":[]}`)
	}))
	ctx := context.Background()

	strain, err := client.Strain(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "/strains/7", gotPath)
	assert.Equal(t, "Gelato", strain.Name)

	_, err = client.PopularStrains(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/strains/popular", gotPath)

	_, err = client.SearchStrains(ctx, "kush")
	require.NoError(t, err)
	assert.Equal(t, "/strains/search", gotPath)
	assert.Equal(t, "kush", gotQuery.Get("q"))

	_, err = client.SimilarStrains(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "/strains/7/similar", gotPath)

	_, err = client.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/categories", gotPath)
}
