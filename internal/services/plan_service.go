package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"alpinepulse/internal/models/response_models"
	"alpinepulse/internal/planner/triprequest"
	"alpinepulse/pkg/utils"
)

// PlanServiceInterface fronts the external itinerary-generation service.
// One POST per submit; no retries, the user resubmits on failure.
type PlanServiceInterface interface {
	GeneratePlan(ctx context.Context, req triprequest.PlanRequest) (*response_models.PlanResponse, error)
}

type PlannerAPIClient struct {
	HTTP    *http.Client
	BaseURL string
}

func NewPlannerAPIClient() *PlannerAPIClient {
	base := os.Getenv("PLANNER_API_URL")
	if base == "" {
		base = "http://localhost:8000"
	}
	return &PlannerAPIClient{
		HTTP:    &http.Client{Timeout: 60 * time.Second},
		BaseURL: base,
	}
}

func (c *PlannerAPIClient) GeneratePlan(ctx context.Context, planReq triprequest.PlanRequest) (*response_models.PlanResponse, error) {
	body, err := json.Marshal(planReq)
	if err != nil {
		return nil, fmt.Errorf("encode plan request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/plan", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build plan request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &utils.PlannerServiceError{}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		// best-effort parse of the service's error detail
		var detail struct {
			Detail string `json:"detail"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&detail)
		return nil, &utils.PlannerServiceError{Detail: detail.Detail}
	}

	var plan response_models.PlanResponse
	if err := json.NewDecoder(resp.Body).Decode(&plan); err != nil {
		return nil, &utils.PlannerServiceError{}
	}
	return &plan, nil
}
