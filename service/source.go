package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/config"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/model"
)

// ErrNotFound signals that a contract id has no detail record. It is the
// only source failure callers can act on distinctly.
var ErrNotFound = errors.New("contract not found")

// ContractSource serves the contract fixture collection and per-contract
// detail records. Both calls are idempotent and side-effect free.
type ContractSource interface {
	FetchAll(ctx context.Context) ([]model.Contract, error)
	FetchOne(ctx context.Context, id string) (*model.ContractDetail, error)
}

// HTTPSource fetches JSON fixtures from a static file server. The configured
// latency reproduces the delay of the backend it stands in for.
type HTTPSource struct {
	config     *config.SourceConfig
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

func NewHTTPSource(cfg *config.SourceConfig) *HTTPSource {
	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name: "contract-source",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 && counts.TotalFailures*2 >= counts.Requests
		},
		Timeout: 30 * time.Second,
		IsSuccessful: func(err error) bool {
			// A missing detail record is a valid answer, not a source outage.
			return err == nil || errors.Is(err, ErrNotFound)
		},
	})

	return &HTTPSource{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		breaker: breaker,
	}
}

// FetchAll fetches the full contract collection from contracts.json.
func (s *HTTPSource) FetchAll(ctx context.Context) ([]model.Contract, error) {
	if err := s.delay(ctx, s.config.LatencyMS); err != nil {
		return nil, err
	}

	body, err := s.get(ctx, s.config.BaseURL+"/contracts.json")
	if err != nil {
		return nil, fmt.Errorf("fetch contracts: %w", err)
	}

	var contracts []model.Contract
	if err := json.Unmarshal(body, &contracts); err != nil {
		return nil, fmt.Errorf("decode contracts: %w", err)
	}
	return contracts, nil
}

// FetchOne fetches a single contract detail from contracts/<id>.json.
// Returns ErrNotFound for a 404 response.
func (s *HTTPSource) FetchOne(ctx context.Context, id string) (*model.ContractDetail, error) {
	if err := s.delay(ctx, s.config.DetailLatencyMS); err != nil {
		return nil, err
	}

	body, err := s.get(ctx, fmt.Sprintf("%s/contracts/%s.json", s.config.BaseURL, id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch contract %s: %w", id, err)
	}

	var detail model.ContractDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("decode contract %s: %w", id, err)
	}
	return &detail, nil
}

func (s *HTTPSource) get(ctx context.Context, url string) ([]byte, error) {
	return s.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		return io.ReadAll(resp.Body)
	})
}

// delay simulates the latency of the backend the fixtures stand in for.
// A zero or negative duration is a no-op.
func (s *HTTPSource) delay(ctx context.Context, ms int) error {
	if ms <= 0 {
		return nil
	}
	select {
	case <-time.After(time.Duration(ms) * time.Millisecond):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
