package geocoder

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yandexBody(positions ...string) string {
	members := ""
	for i, pos := range positions {
		if i > 0 {
			members += ","
		}
		members += fmt.Sprintf(`{"GeoObject":{"Point":{"pos":"%s"}}}`, pos)
	}
	return fmt.Sprintf(`{"response":{"GeoObjectCollection":{"featureMember":[%s]}}}`, members)
}

func TestClientFetch(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "Moscow, Arbat 1", r.URL.Query().Get("geocode"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		fmt.Fprint(w, yandexBody("37.6173 55.7558", "30.0 59.0"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second)
	latitude, longitude, err := client.Fetch("Moscow, Arbat 1")

	require.NoError(t, err)
	assert.Equal(t, 55.7558, latitude)
	assert.Equal(t, 37.6173, longitude)
	assert.Equal(t, 1, calls)
}

func TestClientFetchEmptyResultNotRetried(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, yandexBody())
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second)
	_, _, err := client.Fetch("Nowhere street")

	assert.ErrorIs(t, err, ErrGeocodingFailed)
	assert.Equal(t, 1, calls, "empty result is a data problem, not a transient failure")
}

func TestClientFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key", time.Second)
	_, _, err := client.Fetch("Moscow")

	assert.ErrorIs(t, err, ErrGeocodingFailed)
}

func TestClientFetchMalformedPos(t *testing.T) {
	tests := []struct {
		name string
		pos  string
	}{
		{name: "missing_latitude", pos: "37.6173"},
		{name: "not_numbers", pos: "lon lat"},
		{name: "empty", pos: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, yandexBody(tt.pos))
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-key", time.Second)
			_, _, err := client.Fetch("Moscow")
			assert.ErrorIs(t, err, ErrGeocodingFailed)
		})
	}
}

func TestClientFetchProviderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "test-key", time.Second)
	_, _, err := client.Fetch("Moscow")

	assert.ErrorIs(t, err, ErrGeocodingFailed)
}
