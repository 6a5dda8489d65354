package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"lotofacil/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const primaryPayload = `{"numero": 3001, "dataApuracao": "02/02/2024",
"listaDezenas": ["01","02","03","04","05","06","07","08","09","10","11","12","13","14","15"]}`

const fallbackPayload = `{"concurso": 3001, "data": "02/02/2024",
"dezenas": [11,12,13,14,15,16,17,18,19,20,21,22,23,24,25]}`

func newTestClient(primary, fallback string) *ResultsClient {
	return NewResultsClient(primary, fallback, 1000, WithRetryBackoff(time.Millisecond))
}

func TestParseResultJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    entities.NumberSet
		wantErr bool
	}{
		{name: "official payload", body: primaryPayload, want: entities.Universe(15)},
		{name: "mirror payload", body: fallbackPayload, want: entities.NewNumberSet(11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25)},
		{name: "missing numbers", body: `{"numero": 1}`, wantErr: true},
		{name: "too few numbers", body: `{"numero": 1, "listaDezenas": ["01","02"]}`, wantErr: true},
		{name: "not json", body: `<html>`, wantErr: true},
		{name: "null contest falls through", body: `{"numero": null, "concurso": 9, "dezenas": [1,2,3,4,5,6,7,8,9,10,11,12,13,14,15]}`, want: entities.Universe(15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draw, err := ParseResultJSON([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidDraw)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, draw.Numbers)
		})
	}
}

func TestResultsClient_FetchLatestFromPrimary(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/lotofacil", r.URL.Path)
		_, _ = w.Write([]byte(primaryPayload))
	}))
	defer primary.Close()

	client := newTestClient(primary.URL+"/api/lotofacil", "")
	draw, err := client.FetchLatest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3001, draw.ContestID)
	assert.Equal(t, "02/02/2024", draw.Date)
}

func TestResultsClient_FallsBackWhenPrimaryFails(t *testing.T) {
	var primaryCalls atomic.Int32
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		primaryCalls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer primary.Close()

	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3001", r.URL.Path)
		_, _ = w.Write([]byte(fallbackPayload))
	}))
	defer fallback.Close()

	client := newTestClient(primary.URL, fallback.URL)
	draw, err := client.FetchContest(context.Background(), 3001)
	require.NoError(t, err)
	assert.Equal(t, 3001, draw.ContestID)
	assert.Equal(t, int32(maxRetries+1), primaryCalls.Load())
}

func TestResultsClient_LatestFallbackPath(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected": true}`))
	}))
	defer primary.Close()

	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		_, _ = w.Write([]byte(fallbackPayload))
	}))
	defer fallback.Close()

	draw, err := newTestClient(primary.URL, fallback.URL).FetchLatest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3001, draw.ContestID)
}

func TestResultsClient_NotFound(t *testing.T) {
	var fallbackCalls atomic.Int32
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer primary.Close()

	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fallbackCalls.Add(1)
	}))
	defer fallback.Close()

	_, err := newTestClient(primary.URL, fallback.URL).FetchContest(context.Background(), 99999)
	assert.ErrorIs(t, err, entities.ErrDrawNotFound)
	assert.Zero(t, fallbackCalls.Load())
}

func TestResultsClient_BothSourcesFail(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	_, err := newTestClient(failing.URL, failing.URL).FetchLatest(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both sources")
}

func TestResultsClient_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server.URL, server.URL).FetchLatest(ctx)
	assert.Error(t, err)
}
