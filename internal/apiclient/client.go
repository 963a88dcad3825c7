package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mfeehan/vitals/internal/server"
	"github.com/mfeehan/vitals/pkg/vitals"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    http.DefaultClient,
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, _ := http.NewRequestWithContext(ctx, "GET", c.BaseURL+path, nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != 200 {
		return fmt.Errorf("GET %s: %s", path, res.Status)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, _ := http.NewRequestWithContext(ctx, "POST", c.BaseURL+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != 200 && res.StatusCode != 201 {
		return fmt.Errorf("POST %s: %s", path, res.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) GetDashboard(ctx context.Context) (*server.DashboardResponse, error) {
	var out server.DashboardResponse
	if err := c.get(ctx, "/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetSnapshot(ctx context.Context) (vitals.Snapshot, error) {
	dash, err := c.GetDashboard(ctx)
	if err != nil {
		return vitals.Snapshot{}, err
	}
	return dash.Snapshot, nil
}

func (c *Client) GetInsights(ctx context.Context) ([]vitals.Advisory, error) {
	var out server.InsightsResponse
	if err := c.get(ctx, "/insights", &out); err != nil {
		return nil, err
	}
	return out.Advisories, nil
}

func (c *Client) ListSubscribers(ctx context.Context) ([]string, error) {
	var out server.SubscribersResponse
	if err := c.get(ctx, "/subscribers/", &out); err != nil {
		return nil, err
	}
	return out.Subscribers, nil
}

func (c *Client) AddSteps(ctx context.Context, count int) (int, error) {
	var out server.StepsResponse
	if err := c.post(ctx, "/steps/", map[string]int{"count": count}, &out); err != nil {
		return 0, err
	}
	return out.Steps, nil
}

func (c *Client) LogSleep(ctx context.Context, hours float64) error {
	return c.post(ctx, "/sleep/", map[string]float64{"hours": hours}, nil)
}

func (c *Client) AddWater(ctx context.Context, delta int) (int, error) {
	var out server.WaterResponse
	if err := c.post(ctx, "/water/", map[string]int{"delta": delta}, &out); err != nil {
		return 0, err
	}
	return out.Glasses, nil
}

func (c *Client) LogMood(ctx context.Context, mood, note string) error {
	return c.post(ctx, "/mood/", map[string]string{"mood": mood, "note": note}, nil)
}

func (c *Client) GetChecklist(ctx context.Context) (map[string]bool, error) {
	var out server.ChecklistResponse
	if err := c.get(ctx, "/checklist/", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}
