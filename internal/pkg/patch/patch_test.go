package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringAbsentNullValue(t *testing.T) {
	type body struct {
		ImageURL String `json:"image_url"`
	}

	var absent body
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.ImageURL.Defined)

	var null body
	require.NoError(t, json.Unmarshal([]byte(`{"image_url": null}`), &null))
	assert.True(t, null.ImageURL.Defined)
	assert.Nil(t, null.ImageURL.Value)

	var set body
	require.NoError(t, json.Unmarshal([]byte(`{"image_url": "https://x/y.jpg"}`), &set))
	assert.True(t, set.ImageURL.Defined)
	require.NotNil(t, set.ImageURL.Value)
	assert.Equal(t, "https://x/y.jpg", *set.ImageURL.Value)
}
