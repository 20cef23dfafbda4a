package calculator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/raterudder/gridcalc/pkg/common"
	"github.com/raterudder/gridcalc/pkg/log"
	"github.com/raterudder/gridcalc/pkg/types"
)

// Remote runs the calculations on a gridcalc server.
type Remote struct {
	baseURL *url.URL
	client  *http.Client
}

var _ Calculator = (*Remote)(nil)

// NewRemote returns a Remote calculator for the server at baseURL.
func NewRemote(baseURL string, timeout time.Duration) (*Remote, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse remote url (%s): %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("remote url must be http or https: %s", baseURL)
	}
	return &Remote{
		baseURL: u,
		client:  common.HTTPClient(timeout),
	}, nil
}

// errorResponse is the body the server sends with non-200 responses.
type errorResponse struct {
	Error string `json:"error"`
}

func (r *Remote) do(ctx context.Context, method, path string, body, out any) error {
	u := r.baseURL.JoinPath(path)

	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), &reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	log.Ctx(ctx).DebugContext(ctx, "calling gridcalc server", slog.String("method", method), slog.String("url", u.String()))

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		// 422 means the inputs were accepted but the result overflowed
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity {
			return fmt.Errorf("%s: %w", e.Error, types.ErrInvalidArgument)
		}
		return fmt.Errorf("gridcalc server returned status %d: %s", resp.StatusCode, e.Error)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to decode gridcalc response", slog.Any("error", err))
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// SolarProfit implements the Calculator interface
func (r *Remote) SolarProfit(ctx context.Context, in types.SolarInputs) (types.SolarResults, error) {
	var res types.SolarResults
	err := r.do(ctx, http.MethodPost, "/api/solar/profit", in, &res)
	return res, err
}

// ReliabilityConstants implements the Calculator interface
func (r *Remote) ReliabilityConstants(ctx context.Context) (types.ReliabilityConstants, error) {
	var res types.ReliabilityConstants
	err := r.do(ctx, http.MethodGet, "/api/reliability/constants", nil, &res)
	return res, err
}

// ReliabilityBaseline implements the Calculator interface
func (r *Remote) ReliabilityBaseline(ctx context.Context) (types.ReliabilityResults, error) {
	var res types.ReliabilityResults
	err := r.do(ctx, http.MethodGet, "/api/reliability/baseline", nil, &res)
	return res, err
}

// OutageCost implements the Calculator interface
func (r *Remote) OutageCost(ctx context.Context, in types.OutageCostInputs) (types.OutageCostResults, error) {
	var res types.OutageCostResults
	err := r.do(ctx, http.MethodPost, "/api/reliability/outage-cost", in, &res)
	return res, err
}
