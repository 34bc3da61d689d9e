package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *VWorldClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewVWorldClient(server.URL, "test-key")
}

func TestGetCoordinateByAddress(t *testing.T) {
	var captured *http.Request
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		w.Write([]byte(`{"response": {"status": "OK", "result": {"point": {"x": "127.032261", "y": "37.498409"}}}}`))
	})

	loc, err := client.GetCoordinateByAddress(context.Background(), "서울특별시 강남구 강남대로 396")
	require.NoError(t, err)
	require.NotNil(t, captured)

	q := captured.URL.Query()
	assert.Equal(t, "address", q.Get("service"))
	assert.Equal(t, "getcoord", q.Get("request"))
	assert.Equal(t, "epsg:4326", q.Get("crs"))
	assert.Equal(t, "road", q.Get("type"))
	assert.Equal(t, "test-key", q.Get("key"))
	assert.Equal(t, "서울특별시 강남구 강남대로 396", q.Get("address"))

	assert.InDelta(t, 37.498409, loc.Latitude, 1e-9)
	assert.InDelta(t, 127.032261, loc.Longitude, 1e-9)
}

func TestGetCoordinateByAddress_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": {"status": "NOT_FOUND"}}`))
	})

	_, err := client.GetCoordinateByAddress(context.Background(), "존재하지 않는 주소")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_FOUND")
}

func TestGetAddressByCoordinate(t *testing.T) {
	var captured *http.Request
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		w.Write([]byte(`{"response": {"status": "OK", "result": [{"text": "서울특별시 강남구 강남대로 396"}]}}`))
	})

	address, err := client.GetAddressByCoordinate(context.Background(), model.Location{Latitude: 37.498409, Longitude: 127.032261})
	require.NoError(t, err)
	assert.Equal(t, "서울특별시 강남구 강남대로 396", address)

	q := captured.URL.Query()
	assert.Equal(t, "getaddress", q.Get("request"))
	// point は「経度,緯度」の順
	assert.Equal(t, "127.032261,37.498409", q.Get("point"))
}

func TestGetAddressByCoordinate_EmptyResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": {"status": "OK", "result": []}}`))
	})

	_, err := client.GetAddressByCoordinate(context.Background(), model.Location{Latitude: 0, Longitude: 0})
	require.Error(t, err)
}

func TestVWorldClient_HTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetCoordinateByAddress(context.Background(), "서울")
	require.Error(t, err)
}
