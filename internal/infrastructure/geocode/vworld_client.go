package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
)

// VWorldClient VWorldジオコーディングAPIクライアント
// 道路名住所と座標の相互変換を行う
type VWorldClient struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

// NewVWorldClient 新しいVWorldクライアントを生成する
func NewVWorldClient(apiURL, apiKey string) *VWorldClient {
	return &VWorldClient{
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetCoordinateByAddress 道路名住所を座標に変換する
func (c *VWorldClient) GetCoordinateByAddress(ctx context.Context, address string) (*model.Location, error) {
	params := url.Values{}
	params.Set("service", "address")
	params.Set("request", "getcoord")
	params.Set("crs", "epsg:4326")
	params.Set("address", address)
	params.Set("format", "json")
	params.Set("type", "road")
	params.Set("key", c.apiKey)

	var resp coordResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, fmt.Errorf("住所の座標変換に失敗: %w", err)
	}
	if resp.Response.Status != "OK" {
		return nil, fmt.Errorf("住所の座標変換に失敗: ステータス %s", resp.Response.Status)
	}

	lon, err := strconv.ParseFloat(resp.Response.Result.Point.X, 64)
	if err != nil {
		return nil, fmt.Errorf("経度のパースに失敗: %w", err)
	}
	lat, err := strconv.ParseFloat(resp.Response.Result.Point.Y, 64)
	if err != nil {
		return nil, fmt.Errorf("緯度のパースに失敗: %w", err)
	}

	return &model.Location{Latitude: lat, Longitude: lon}, nil
}

// GetAddressByCoordinate 座標を道路名住所に変換する
func (c *VWorldClient) GetAddressByCoordinate(ctx context.Context, loc model.Location) (string, error) {
	params := url.Values{}
	params.Set("service", "address")
	params.Set("request", "getaddress")
	params.Set("crs", "epsg:4326")
	params.Set("point", fmt.Sprintf("%f,%f", loc.Longitude, loc.Latitude))
	params.Set("format", "json")
	params.Set("type", "road")
	params.Set("key", c.apiKey)

	var resp addressResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return "", fmt.Errorf("座標の住所変換に失敗: %w", err)
	}
	if resp.Response.Status != "OK" || len(resp.Response.Result) == 0 {
		return "", fmt.Errorf("座標の住所変換に失敗: ステータス %s", resp.Response.Status)
	}

	return resp.Response.Result[0].Text, nil
}

func (c *VWorldClient) get(ctx context.Context, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s?%s", c.apiURL, params.Encode())

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

// --- VWorld APIのレスポンスをパースするための構造体 ---

type coordResponse struct {
	Response struct {
		Status string `json:"status"`
		Result struct {
			Point struct {
				X string `json:"x"`
				Y string `json:"y"`
			} `json:"point"`
		} `json:"result"`
	} `json:"response"`
}

type addressResponse struct {
	Response struct {
		Status string `json:"status"`
		Result []struct {
			Text string `json:"text"`
		} `json:"result"`
	} `json:"response"`
}
