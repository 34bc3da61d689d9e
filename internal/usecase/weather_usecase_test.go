package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
	"github.com/ld5ehom/recommend-backend/internal/domain/service"
	"github.com/ld5ehom/recommend-backend/internal/infrastructure/weather"
)

// stubStationsRepository 固定の観測所（またはエラー）を返す
type stubStationsRepository struct {
	station *model.ObservationStation
	err     error
}

func (s *stubStationsRepository) FindNearestUsable(ctx context.Context, center model.Location, radiusKm float64) (*model.ObservationStation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.station, nil
}

func newWeatherTestProvider(t *testing.T, handler http.HandlerFunc, stations *stubStationsRepository) *weatherUseCaseImpl {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	kma := weather.NewKMAClient("test-key", server.URL, server.URL, service.NewGridProjector())
	return NewWeatherUseCase(kma, stations).(*weatherUseCaseImpl)
}

func TestGetRecentStationReadings_Success(t *testing.T) {
	provider := newWeatherTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": {"header": {"resultCode": "00", "resultMsg": "NORMAL_SERVICE"}, "body": {"items": {"item": [
			{"tm": "2024-06-01 11:00", "stnId": "108", "stnNm": "서울", "ta": "21.5", "rn": "", "dc10Tca": "3", "dsnw": "", "pa": "1008.2"}
		]}}}}`))
	}, &stubStationsRepository{
		station: &model.ObservationStation{StationID: "108", IsUsable: true, DistanceKm: 7.2},
	})

	payload, err := provider.GetRecentStationReadings(context.Background(), model.Location{Latitude: 37.5, Longitude: 127.0})
	require.NoError(t, err)
	assert.Equal(t, "108", payload.Station.StationID)
	assert.InDelta(t, 7.2, payload.Station.DistanceKm, 1e-9)
	require.Len(t, payload.Items, 1)
	assert.Equal(t, "21.5", payload.Items[0].Ta)
}

func TestGetRecentStationReadings_NoStation(t *testing.T) {
	provider := newWeatherTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("観測所が見つからない場合はAPIを呼ばない")
	}, &stubStationsRepository{err: model.ErrNoStationFound})

	_, err := provider.GetRecentStationReadings(context.Background(), model.Location{Latitude: 37.5, Longitude: 127.0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNoStationFound))
	assert.False(t, errors.Is(err, model.ErrWeatherUnavailable))
}

func TestGetRecentStationReadings_UpstreamFailure(t *testing.T) {
	// 上流APIの失敗は ErrWeatherUnavailable として識別できる形で伝播する
	provider := newWeatherTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, &stubStationsRepository{
		station: &model.ObservationStation{StationID: "108", IsUsable: true, DistanceKm: 7.2},
	})

	_, err := provider.GetRecentStationReadings(context.Background(), model.Location{Latitude: 37.5, Longitude: 127.0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrWeatherUnavailable))
	assert.False(t, errors.Is(err, model.ErrNoStationFound))
}
