package govuk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/holiday"
)

const sampleFeed = `{
  "england-and-wales": {
    "division": "england-and-wales",
    "events": [
      {"title": "Good Friday", "date": "2025-04-18", "notes": "", "bunting": false},
      {"title": "Easter Monday", "date": "2025-04-21", "notes": "", "bunting": true}
    ]
  },
  "scotland": {
    "division": "scotland",
    "events": [
      {"title": "2nd January", "date": "2025-01-02", "notes": "", "bunting": true}
    ]
  },
  "northern-ireland": {
    "division": "northern-ireland",
    "events": [
      {"title": "St Patrick's Day", "date": "2025-03-17", "notes": "", "bunting": true}
    ]
  }
}`

func TestClient_FetchBankHolidays(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	got, err := client.FetchBankHolidays(context.Background())
	require.NoError(t, err)

	require.Len(t, got[holiday.RegionEnglandAndWales], 2)
	require.Len(t, got[holiday.RegionScotland], 1)
	require.Len(t, got[holiday.RegionNorthernIreland], 1)

	easter := got[holiday.RegionEnglandAndWales][1]
	assert.Equal(t, "Easter Monday", easter.Title)
	assert.Equal(t, time.Date(2025, time.April, 21, 0, 0, 0, 0, time.UTC), easter.Date)
	assert.Equal(t, "gov.uk", easter.Source)
	assert.Equal(t, holiday.RegionEnglandAndWales, easter.Region)
}

func TestClient_FetchBankHolidays_SkipsUnknownDivisions(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"atlantis": {"division": "atlantis", "events": [{"title": "X", "date": "2025-01-01"}]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	got, err := client.FetchBankHolidays(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClient_FetchBankHolidays_ServerError(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchBankHolidays(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, holiday.ErrFeedUnavailable)
}

func TestClient_FetchBankHolidays_BadDate(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"scotland": {"division": "scotland", "events": [{"title": "X", "date": "not-a-date"}]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchBankHolidays(context.Background())
	assert.Error(t, err)
}
