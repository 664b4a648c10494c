package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"placemap-api/internal/models"
)

// ErrEmptySource is returned when no dataset location is configured.
var ErrEmptySource = errors.New("repository: dataset source is empty")

// DatasetRepository reads the static dataset from a local file or an http(s) URL.
type DatasetRepository struct {
	source     string
	httpClient *http.Client
}

// NewDatasetRepository creates a new dataset repository for the given source
func NewDatasetRepository(source string, timeout time.Duration) *DatasetRepository {
	return &DatasetRepository{
		source:     source,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Source returns the configured dataset location
func (r *DatasetRepository) Source() string {
	return r.source
}

// LoadDataset fetches and decodes the dataset. It is called once per session.
func (r *DatasetRepository) LoadDataset(ctx context.Context) (*models.Dataset, error) {
	if r.source == "" {
		return nil, ErrEmptySource
	}

	body, err := r.open(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var dataset models.Dataset
	if err := json.NewDecoder(body).Decode(&dataset); err != nil {
		return nil, fmt.Errorf("repository: failed to decode dataset: %w", err)
	}

	return &dataset, nil
}

func (r *DatasetRepository) open(ctx context.Context) (io.ReadCloser, error) {
	if !strings.HasPrefix(r.source, "http://") && !strings.HasPrefix(r.source, "https://") {
		file, err := os.Open(r.source)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to open dataset: %w", err)
		}
		return file, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.source, nil)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to build dataset request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to fetch dataset: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("repository: dataset request returned status %d", resp.StatusCode)
	}
	return resp.Body, nil
}
