package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandRequest_Validate(t *testing.T) {
	cases := []struct {
		name string
		req  BrandRequest
		ok   bool
	}{
		{"both present", BrandRequest{BrandName: "Nova", UserID: "u1"}, true},
		{"missing brand name", BrandRequest{UserID: "u1"}, false},
		{"missing user id", BrandRequest{BrandName: "Nova"}, false},
		{"both missing", BrandRequest{}, false},
		{"whitespace is presence", BrandRequest{BrandName: " ", UserID: "u1"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrValidation)
			}
		})
	}
}

func TestBrandRequest_WithDefaults(t *testing.T) {
	req := BrandRequest{BrandName: "Nova", UserID: "u1", Industry: "Fintech"}

	t.Run("fills empty optionals with the default placeholder", func(t *testing.T) {
		out := req.WithDefaults("")
		assert.Equal(t, "Fintech", out.Industry)
		assert.Equal(t, DefaultPlaceholder, out.Audience)
		assert.Equal(t, DefaultPlaceholder, out.Personality)
		assert.Equal(t, DefaultPlaceholder, out.Values)
		assert.Equal(t, DefaultPlaceholder, out.Competitors)
		assert.Equal(t, DefaultPlaceholder, out.StylePreference)
		assert.Equal(t, DefaultPlaceholder, out.LogoDirection)
		assert.Equal(t, DefaultPlaceholder, out.Keywords)
		assert.Equal(t, DefaultPlaceholder, out.BrandType)
	})

	t.Run("uses the given placeholder", func(t *testing.T) {
		out := req.WithDefaults("None")
		assert.Equal(t, "None", out.Audience)
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		_ = req.WithDefaults("None")
		assert.Empty(t, req.Audience)
	})
}

func TestBrandRequest_Details(t *testing.T) {
	req := BrandRequest{BrandName: "Nova", UserID: "u1", Industry: "Fintech", LogoDirection: "geometric"}

	assert.Equal(t, map[string]string{
		"industry":      "Fintech",
		"logoDirection": "geometric",
	}, req.Details())
}

func TestUserID_UnmarshalJSON(t *testing.T) {
	var body struct {
		UserID UserID `json:"userId"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"userId":"abc"}`), &body))
	assert.Equal(t, UserID("abc"), body.UserID)

	require.NoError(t, json.Unmarshal([]byte(`{"userId":42}`), &body))
	assert.Equal(t, UserID("42"), body.UserID)

	require.NoError(t, json.Unmarshal([]byte(`{"userId":null}`), &body))
	assert.Equal(t, UserID(""), body.UserID)

	assert.Error(t, json.Unmarshal([]byte(`{"userId":true}`), &body))
}

func TestPipelineError(t *testing.T) {
	cause := errors.New("connection refused")
	err := Fail(ErrProjectCreate, cause)

	assert.ErrorIs(t, err, ErrProjectCreate)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrKitSave)
	assert.Equal(t, "project creation failed: connection refused", err.Error())
}
