package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/spoiledshruu/SaaS-contracts-dashboard/model"
)

// Human-readable messages stored in the error field, mirroring what
// consumers render next to a retry control.
const (
	MsgLoadContractsFailed = "Failed to load contracts"
	MsgLoadDetailFailed    = "Failed to load contract details"
	MsgContractNotFound    = "Contract not found"
)

// PaginationState is the pagination cursor plus its derived totals.
// CurrentPage is stored as written; clamping happens at read time in
// Paginate, and whenever the totals themselves change.
type PaginationState struct {
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
	TotalItems   int `json:"totalItems"`
	TotalPages   int `json:"totalPages"`
}

// StoreState is a read-only snapshot of the store handed to consumers.
// Slices are copies; mutating them does not affect the store.
type StoreState struct {
	Contracts         []model.Contract      `json:"contracts"`
	FilteredContracts []model.Contract      `json:"filteredContracts"`
	SelectedContract  *model.ContractDetail `json:"selectedContract"`
	Loading           bool                  `json:"loading"`
	Error             string                `json:"error,omitempty"`
	Filters           FilterCriteria        `json:"filters"`
	Pagination        PaginationState       `json:"pagination"`
}

// Stats are the dashboard aggregates over the full collection.
type Stats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	ByRisk   map[string]int `json:"byRisk"`
}

// ContractsStore owns the contract collection for one UI session: the full
// list, the filtered derivation, the selected detail, loading/error flags,
// filter criteria and the pagination cursor. All mutations go through its
// operations; the filtered collection is never edited directly, only
// recomputed from the full collection and the current criteria.
type ContractsStore struct {
	source ContractSource

	mu        sync.RWMutex
	contracts []model.Contract
	filtered  []model.Contract
	selected  *model.ContractDetail
	loading   bool
	err       string

	filters      FilterCriteria
	currentPage  int
	itemsPerPage int
	totalPages   int

	// Monotonic tokens fencing overlapping loads: a response is applied
	// only if no newer request of the same kind has started since.
	loadSeq   uint64
	detailSeq uint64
}

// NewContractsStore creates a store backed by the given source.
func NewContractsStore(source ContractSource, itemsPerPage int) *ContractsStore {
	if itemsPerPage <= 0 {
		itemsPerPage = 10
	}
	return &ContractsStore{
		source:       source,
		contracts:    []model.Contract{},
		filtered:     []model.Contract{},
		filters:      DefaultCriteria(),
		currentPage:  1,
		itemsPerPage: itemsPerPage,
	}
}

// LoadAll replaces the full collection from the source. On failure the
// previous collection is left untouched and the error message is stored.
func (s *ContractsStore) LoadAll(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.loadSeq++
	token := s.loadSeq
	s.mu.Unlock()

	contracts, err := s.source.FetchAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.loadSeq {
		// A newer load owns the state now; discard this response.
		slog.Debug("discarding stale collection load", "token", token, "current", s.loadSeq)
		return err
	}

	s.loading = false
	if err != nil {
		s.err = MsgLoadContractsFailed
		return err
	}

	s.contracts = contracts
	s.recompute()
	return nil
}

// LoadDetail fetches one contract's detail record. Any previously selected
// detail is cleared as soon as the load begins, so a failed or slow load
// never leaves a mismatched record on screen. A not-found failure stores a
// distinct message.
func (s *ContractsStore) LoadDetail(ctx context.Context, id string) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.selected = nil
	s.detailSeq++
	token := s.detailSeq
	s.mu.Unlock()

	detail, err := s.source.FetchOne(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.detailSeq {
		slog.Debug("discarding stale detail load", "contract_id", id, "token", token, "current", s.detailSeq)
		return err
	}

	s.loading = false
	if err != nil {
		s.selected = nil
		if errors.Is(err, ErrNotFound) {
			s.err = MsgContractNotFound
		} else {
			s.err = MsgLoadDetailFailed
		}
		return err
	}

	s.selected = detail
	return nil
}

// SetSearchTerm updates the search term and returns to the first page.
func (s *ContractsStore) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SearchTerm = term
	s.currentPage = 1
	s.recompute()
}

// SetStatusFilter updates the status selector and returns to the first page.
func (s *ContractsStore) SetStatusFilter(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Status = status
	s.currentPage = 1
	s.recompute()
}

// SetRiskFilter updates the risk selector and returns to the first page.
func (s *ContractsStore) SetRiskFilter(risk string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.RiskScore = risk
	s.currentPage = 1
	s.recompute()
}

// SetCurrentPage stores the requested page without validation; Paginate
// clamps at read time, so an out-of-range request degrades to the nearest
// valid page when rendered.
func (s *ContractsStore) SetCurrentPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPage = page
}

// ResetFilters restores the default criteria and returns to the first page.
func (s *ContractsStore) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = DefaultCriteria()
	s.currentPage = 1
	s.recompute()
}

// ClearSelected drops the selected detail, e.g. on navigation away.
func (s *ContractsStore) ClearSelected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// recompute derives the filtered collection and pagination totals from the
// full collection and current criteria. The cursor is clamped whenever the
// totals change so it never points past the result set.
// Must be called with the lock held.
func (s *ContractsStore) recompute() {
	s.filtered = Filter(s.contracts, s.filters)

	s.totalPages = (len(s.filtered) + s.itemsPerPage - 1) / s.itemsPerPage

	maxPage := s.totalPages
	if maxPage < 1 {
		maxPage = 1
	}
	if s.currentPage > maxPage {
		s.currentPage = maxPage
	}
	if s.currentPage < 1 {
		s.currentPage = 1
	}
}

// State returns a snapshot of the whole store.
func (s *ContractsStore) State() StoreState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contracts := make([]model.Contract, len(s.contracts))
	copy(contracts, s.contracts)
	filtered := make([]model.Contract, len(s.filtered))
	copy(filtered, s.filtered)

	var selected *model.ContractDetail
	if s.selected != nil {
		detail := *s.selected
		selected = &detail
	}

	return StoreState{
		Contracts:         contracts,
		FilteredContracts: filtered,
		SelectedContract:  selected,
		Loading:           s.loading,
		Error:             s.err,
		Filters:           s.filters,
		Pagination: PaginationState{
			CurrentPage:  s.currentPage,
			ItemsPerPage: s.itemsPerPage,
			TotalItems:   len(s.filtered),
			TotalPages:   s.totalPages,
		},
	}
}

// Page returns the current window of the filtered collection.
func (s *ContractsStore) Page() Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Paginate(s.filtered, s.currentPage, s.itemsPerPage)
}

// Filtered returns a copy of the filtered collection, e.g. for exports.
func (s *ContractsStore) Filtered() []model.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	filtered := make([]model.Contract, len(s.filtered))
	copy(filtered, s.filtered)
	return filtered
}

// Selected returns the currently selected detail, or nil.
func (s *ContractsStore) Selected() *model.ContractDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	detail := *s.selected
	return &detail
}

// Err returns the stored error message, empty when there is none.
func (s *ContractsStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Loading reports whether a load is in flight.
func (s *ContractsStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Stats aggregates the full collection by status and risk level.
func (s *ContractsStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		Total:    len(s.contracts),
		ByStatus: make(map[string]int),
		ByRisk:   make(map[string]int),
	}
	for _, c := range s.contracts {
		stats.ByStatus[c.Status]++
		stats.ByRisk[c.RiskScore]++
	}
	return stats
}
