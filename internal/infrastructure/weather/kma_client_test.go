package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
	"github.com/ld5ehom/recommend-backend/internal/domain/service"
)

// 日付またぎの挙動を確認するため 00:30 に固定した現在時刻
var fixedNow = time.Date(2024, 6, 1, 0, 30, 0, 0, time.UTC)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*KMAClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewKMAClient("test-key", server.URL+"/nowcast", server.URL+"/observation", service.NewGridProjector())
	client.now = func() time.Time { return fixedNow }
	return client, server
}

const nowcastBody = `{
	"response": {
		"header": {"resultCode": "00", "resultMsg": "NORMAL_SERVICE"},
		"body": {
			"items": {
				"item": [
					{"baseDate": "20240531", "baseTime": "2300", "category": "T1H", "nx": 60, "ny": 127, "obsrValue": "21.5"},
					{"baseDate": "20240531", "baseTime": "2300", "category": "RN1", "nx": 60, "ny": 127, "obsrValue": "0"}
				]
			}
		}
	}
}`

const observationBody = `{
	"response": {
		"header": {"resultCode": "00", "resultMsg": "NORMAL_SERVICE"},
		"body": {
			"items": {
				"item": [
					{"tm": "2024-05-31 23:00", "stnId": "108", "stnNm": "서울", "ta": "21.5", "rn": "", "dc10Tca": "3", "dsnw": "", "pa": "1008.2"},
					{"tm": "2024-06-01 00:00", "stnId": "108", "stnNm": "서울", "ta": "20.9", "rn": "0.5", "dc10Tca": "8", "dsnw": "", "pa": "1007.9"}
				]
			}
		}
	}
}`

func TestGetUltraShortTermObservation(t *testing.T) {
	var captured *http.Request
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		w.Write([]byte(nowcastBody))
	})

	payload, err := client.GetUltraShortTermObservation(context.Background(), model.Location{Latitude: 37.5635, Longitude: 126.980})
	require.NoError(t, err)
	require.NotNil(t, captured)

	q := captured.URL.Query()
	assert.Equal(t, "test-key", q.Get("serviceKey"))
	assert.Equal(t, "1", q.Get("pageNo"))
	assert.Equal(t, "1000", q.Get("numOfRows"))
	assert.Equal(t, "JSON", q.Get("dataType"))
	// ソウル市庁付近は格子 (60, 127)
	assert.Equal(t, "60", q.Get("nx"))
	assert.Equal(t, "127", q.Get("ny"))
	// 現在 00:30 の1時間前を正時に丸めると前日の 23:00
	assert.Equal(t, "20240531", q.Get("base_date"))
	assert.Equal(t, "2300", q.Get("base_time"))

	assert.Equal(t, "20240531", payload.BaseDate)
	assert.Equal(t, "2300", payload.BaseTime)
	assert.Equal(t, model.GridCell{X: 60, Y: 127}, payload.Grid)
	require.Len(t, payload.Items, 2)
	assert.Equal(t, "T1H", payload.Items[0].Category)
	assert.Equal(t, "21.5", payload.Items[0].ObsrValue)
}

func TestGetHourlyObservations(t *testing.T) {
	var captured *http.Request
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		w.Write([]byte(observationBody))
	})

	items, err := client.GetHourlyObservations(context.Background(), "108")
	require.NoError(t, err)
	require.NotNil(t, captured)

	q := captured.URL.Query()
	assert.Equal(t, "ASOS", q.Get("dataCd"))
	assert.Equal(t, "HR", q.Get("dateCd"))
	assert.Equal(t, "108", q.Get("stnIds"))
	assert.Equal(t, "10", q.Get("numOfRows"))
	// 対象日は前日、時刻は「1時間前〜現在」の時のみ
	assert.Equal(t, "20240531", q.Get("startDt"))
	assert.Equal(t, "20240531", q.Get("endDt"))
	assert.Equal(t, "23", q.Get("startHh"))
	assert.Equal(t, "00", q.Get("endHh"))

	require.Len(t, items, 2)
	assert.Equal(t, "108", items[0].StationID)
	assert.Equal(t, "20.9", items[1].Ta)
}

func TestGetHourlyObservations_FeatureExtraction(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(observationBody))
	})

	items, err := client.GetHourlyObservations(context.Background(), "108")
	require.NoError(t, err)

	payload := &model.ObservationPayload{Items: items}
	sample := payload.WeatherSample()

	// 末尾（最新）のレコードが使われ、欠測の積雪は 0.0 になる
	assert.Equal(t, model.WeatherSample{
		Temperature:   20.9,
		Precipitation: 0.5,
		Cloudiness:    8,
		Snowfall:      0,
		Pressure:      1007.9,
	}, sample)
}

func TestKMAClient_APIErrorCode(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": {"header": {"resultCode": "03", "resultMsg": "NODATA_ERROR"}, "body": {"items": {"item": []}}}}`))
	})

	_, err := client.GetUltraShortTermObservation(context.Background(), model.Location{Latitude: 37.5, Longitude: 127.0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NODATA_ERROR")

	_, err = client.GetHourlyObservations(context.Background(), "108")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "03")
}

func TestKMAClient_HTTPError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetHourlyObservations(context.Background(), "108")
	require.Error(t, err)
}

func TestKMAClient_BrokenJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	})

	_, err := client.GetUltraShortTermObservation(context.Background(), model.Location{Latitude: 37.5, Longitude: 127.0})
	require.Error(t, err)
}
