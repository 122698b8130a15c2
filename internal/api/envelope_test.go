package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cannadex/cannadex-go/internal/models"
)

func TestUnwrap_Success(t *testing.T) {
	body := []byte(`{"success":true,"data":{"id":3,"name":"Gelato"}}`)
	strain, err := unwrap[models.Strain](body)
	require.NoError(t, err)
	assert.Equal(t, int64(3), strain.ID)
	assert.Equal(t, "Gelato", strain.Name)
}

func TestUnwrap_EnvelopeFailureBecomesAPIError(t *testing.T) {
	body := []byte(`{"success":false,"message":"strain already exists"}`)
	_, err := unwrap[models.Strain](body)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeRequestFailed, apiErr.Code)
	assert.Zero(t, apiErr.StatusCode)
	assert.Equal(t, "strain already exists", apiErr.Message)
}

func TestUnwrap_FailureWithoutMessageGetsDefault(t *testing.T) {
	_, err := unwrap[models.Strain]([]byte(`{"success":false}`))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "request failed", apiErr.Message)
}

func TestUnwrap_MalformedBody(t *testing.T) {
	_, err := unwrap[models.Strain]([]byte(`not json`))
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestUnwrapEmpty(t *testing.T) {
	assert.NoError(t, unwrapEmpty(nil))
	assert.NoError(t, unwrapEmpty([]byte(`{"success":true}`)))
	assert.Error(t, unwrapEmpty([]byte(`{"success":false,"message":"nope"}`)))
}

func TestMessageFrom(t *testing.T) {
	assert.Equal(t, "slow down", messageFrom([]byte(`{"success":false,"message":"slow down"}`)))
	assert.Empty(t, messageFrom([]byte(`garbage`)))
	assert.Empty(t, messageFrom([]byte(`{"success":false}`)))
}

func TestValidationFrom(t *testing.T) {
	v := validationFrom([]byte(`{"success":false,"message":"invalid","errors":{"username":["is taken"]}}`))
	assert.Equal(t, "invalid", v.Message)
	assert.Equal(t, []string{"is taken"}, v.Errors["username"])

	v = validationFrom([]byte(`garbage`))
	assert.Equal(t, "validation failed", v.Message)
	assert.Nil(t, v.Errors)
}
