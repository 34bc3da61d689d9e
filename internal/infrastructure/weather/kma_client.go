package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
	"github.com/ld5ehom/recommend-backend/internal/domain/service"
)

// KMAClient 気象庁（data.go.kr）の気象APIクライアント
// 超短期実況（格子ベース）と時間別地上観測（観測所ベース）の2系統を呼び出す
type KMAClient struct {
	apiKey         string
	nowcastURL     string
	observationURL string
	projector      *service.GridProjector
	httpClient     *http.Client
	now            func() time.Time
}

// NewKMAClient 新しいKMAクライアントを生成する
func NewKMAClient(apiKey, nowcastURL, observationURL string, projector *service.GridProjector) *KMAClient {
	return &KMAClient{
		apiKey:         apiKey,
		nowcastURL:     nowcastURL,
		observationURL: observationURL,
		projector:      projector,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
		now:            time.Now,
	}
}

// GetUltraShortTermObservation 座標を格子に射影して超短期実況を取得する
// 公開遅延を考慮し、基準時刻は現在時刻の1時間前を正時に丸めたもの
func (c *KMAClient) GetUltraShortTermObservation(ctx context.Context, loc model.Location) (*model.NowcastPayload, error) {
	cell := c.projector.ToGrid(loc.Latitude, loc.Longitude)
	base := c.now().Add(-time.Hour).Truncate(time.Hour)

	params := url.Values{}
	params.Set("serviceKey", c.apiKey)
	params.Set("pageNo", "1")
	params.Set("numOfRows", "1000")
	params.Set("dataType", "JSON")
	params.Set("base_date", base.Format("20060102"))
	params.Set("base_time", base.Format("1504"))
	params.Set("nx", strconv.Itoa(cell.X))
	params.Set("ny", strconv.Itoa(cell.Y))

	var resp nowcastResponse
	if err := c.get(ctx, c.nowcastURL, params, &resp); err != nil {
		return nil, fmt.Errorf("超短期実況の取得に失敗: %w", err)
	}
	if err := resp.Response.Header.check(); err != nil {
		return nil, fmt.Errorf("超短期実況の取得に失敗: %w", err)
	}

	return &model.NowcastPayload{
		BaseDate: base.Format("20060102"),
		BaseTime: base.Format("1504"),
		Grid:     cell,
		Items:    resp.Response.Body.Items.Item,
	}, nil
}

// GetHourlyObservations 指定観測所の直近の時間別地上観測（ASOS）を取得する
func (c *KMAClient) GetHourlyObservations(ctx context.Context, stationID string) ([]model.ObservationItem, error) {
	now := c.now()
	baseDate := now.AddDate(0, 0, -1)

	params := url.Values{}
	params.Set("serviceKey", c.apiKey)
	params.Set("pageNo", "1")
	params.Set("numOfRows", "10")
	params.Set("dataType", "JSON")
	params.Set("dataCd", "ASOS")
	params.Set("dateCd", "HR")
	params.Set("startDt", baseDate.Format("20060102"))
	params.Set("startHh", now.Add(-time.Hour).Format("15"))
	params.Set("endDt", baseDate.Format("20060102"))
	params.Set("endHh", now.Format("15"))
	params.Set("stnIds", stationID)

	var resp observationResponse
	if err := c.get(ctx, c.observationURL, params, &resp); err != nil {
		return nil, fmt.Errorf("観測所 %s の時間別観測の取得に失敗: %w", stationID, err)
	}
	if err := resp.Response.Header.check(); err != nil {
		return nil, fmt.Errorf("観測所 %s の時間別観測の取得に失敗: %w", stationID, err)
	}

	return resp.Response.Body.Items.Item, nil
}

// get リクエストを実行してJSONレスポンスをパースする
func (c *KMAClient) get(ctx context.Context, baseURL string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s?%s", baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("JSONのパースに失敗: %w", err)
	}
	return nil
}

// --- data.go.kr APIのレスポンスをパースするための構造体 ---

type responseHeader struct {
	ResultCode string `json:"resultCode"`
	ResultMsg  string `json:"resultMsg"`
}

func (h responseHeader) check() error {
	if h.ResultCode != "00" {
		return fmt.Errorf("APIエラー %s: %s", h.ResultCode, h.ResultMsg)
	}
	return nil
}

type nowcastResponse struct {
	Response struct {
		Header responseHeader `json:"header"`
		Body   struct {
			Items struct {
				Item []model.NowcastItem `json:"item"`
			} `json:"items"`
		} `json:"body"`
	} `json:"response"`
}

type observationResponse struct {
	Response struct {
		Header responseHeader `json:"header"`
		Body   struct {
			Items struct {
				Item []model.ObservationItem `json:"item"`
			} `json:"items"`
		} `json:"body"`
	} `json:"response"`
}
