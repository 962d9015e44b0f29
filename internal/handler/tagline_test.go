package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tourdesk/internal/handler"
	"github.com/pkordes/tourdesk/internal/tagline"
)

type taglineBody struct {
	Prefix     string `json:"prefix"`
	MarkerText string `json:"marker_text"`
	Suffix     string `json:"suffix"`
	Matched    bool   `json:"matched"`
	HTML       string `json:"html"`
}

func getTagline(t *testing.T, h http.Handler, text string) taglineBody {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/tagline?text="+url.QueryEscape(text), nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body taglineBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestGetTagline_DefaultMarker(t *testing.T) {
	h := handler.NewServer(&mockTourServicer{}, nil, nil, nil).Routes(stubGate{})

	got := getTagline(t, h, "Book early. PLEASE NOTE— <limited> seats")

	assert.Equal(t, taglineBody{
		Prefix:     "Book early. ",
		MarkerText: "Please note—",
		Suffix:     " <limited> seats",
		Matched:    true,
		HTML:       "Book early. <strong>Please note—</strong> &lt;limited&gt; seats",
	}, got)
}

func TestGetTagline_NoMarker(t *testing.T) {
	h := handler.NewServer(&mockTourServicer{}, nil, nil, nil).Routes(stubGate{})

	got := getTagline(t, h, "Explore Bangladesh")

	assert.False(t, got.Matched)
	assert.Equal(t, "Explore Bangladesh", got.Prefix)
	assert.Empty(t, got.MarkerText)
	assert.Empty(t, got.Suffix)
	assert.Equal(t, "Explore Bangladesh", got.HTML)
}

func TestGetTagline_ConfiguredMarker(t *testing.T) {
	em := tagline.New(tagline.Marker{Trigger: "heads up", Display: "Heads up"})
	h := handler.NewServer(&mockTourServicer{}, nil, em, nil).Routes(stubGate{})

	got := getTagline(t, h, "heads up - monsoon season")

	assert.True(t, got.Matched)
	assert.Equal(t, "Heads up", got.MarkerText)
	assert.Equal(t, " - monsoon season", got.Suffix)
}
