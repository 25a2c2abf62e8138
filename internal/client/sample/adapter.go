// Package sampleclient talks to the sample service.
package sampleclient

import (
	"context"
	"net/http"

	"github.com/GregMSThompson/retail-backend/internal/client/rpc"
	"github.com/GregMSThompson/retail-backend/internal/dto"
)

type Adapter struct {
	rpc *rpc.Client
}

func NewAdapter(baseURL string, httpClient *http.Client) *Adapter {
	return &Adapter{rpc: rpc.New("sample", baseURL, httpClient)}
}

// GetSampleStatus bulk-resolves the per-user status of each sample id.
// Unknown ids come back with the NOT_FOUND sentinel status, not an error.
func (a *Adapter) GetSampleStatus(ctx context.Context, uid string, sampleIDs []string) ([]dto.SampleStatus, error) {
	req := statusCheckRequest{UserID: uid, SampleIDs: sampleIDs}
	var resp statusCheckResponse
	if err := a.rpc.Post(ctx, "/v1/samples/status-check", req, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

type statusCheckRequest struct {
	UserID    string   `json:"user_id"`
	SampleIDs []string `json:"sample_ids"`
}

type statusCheckResponse struct {
	Results []dto.SampleStatus `json:"results"`
}
