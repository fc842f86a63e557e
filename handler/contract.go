package handler

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/middleware"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/model"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/pkg/logger"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/pkg/metrics"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/service"
)

// ContractHandler exposes the contracts state store over HTTP. Each
// authenticated user owns one store instance carrying their collection,
// filters and pagination cursor for the lifetime of the process.
type ContractHandler struct {
	source       service.ContractSource
	appState     *service.AppState
	metrics      *metrics.Metrics
	itemsPerPage int

	mu     sync.Mutex
	stores map[string]*service.ContractsStore
}

func NewContractHandler(source service.ContractSource, appState *service.AppState, m *metrics.Metrics, itemsPerPage int) *ContractHandler {
	return &ContractHandler{
		source:       source,
		appState:     appState,
		metrics:      m,
		itemsPerPage: itemsPerPage,
		stores:       make(map[string]*service.ContractsStore),
	}
}

// storeFor returns the session store for the authenticated user, creating
// it on first use.
func (h *ContractHandler) storeFor(c *gin.Context) *service.ContractsStore {
	username := middleware.GetUsername(c)

	h.mu.Lock()
	defer h.mu.Unlock()

	store, ok := h.stores[username]
	if !ok {
		store = service.NewContractsStore(h.source, h.itemsPerPage)
		h.stores[username] = store
	}
	return store
}

// listResponse is the store state a list view renders.
type listResponse struct {
	Contracts  []model.Contract       `json:"contracts"`
	Pagination service.Page           `json:"pagination"`
	Filters    service.FilterCriteria `json:"filters"`
	Loading    bool                   `json:"loading"`
	Error      string                 `json:"error,omitempty"`
}

func (h *ContractHandler) list(c *gin.Context, store *service.ContractsStore) {
	state := store.State()
	page := store.Page()

	c.JSON(http.StatusOK, listResponse{
		Contracts:  page.Items,
		Pagination: page,
		Filters:    state.Filters,
		Loading:    state.Loading,
		Error:      state.Error,
	})
}

// Refresh loads the full collection from the source.
func (h *ContractHandler) Refresh(c *gin.Context) {
	store := h.storeFor(c)

	if err := store.LoadAll(c.Request.Context()); err != nil {
		h.metrics.ObserveStoreLoad("collection", "error")
		logger.Error(c.Request.Context(), "collection load failed", "error", err)
		h.appState.AddNotification(service.NotifyError, "Load failed", store.Err())
		c.JSON(http.StatusBadGateway, gin.H{"error": store.Err()})
		return
	}

	h.metrics.ObserveStoreLoad("collection", "success")
	h.list(c, store)
}

// List returns the current page of the filtered collection. The collection
// is loaded on first access.
func (h *ContractHandler) List(c *gin.Context) {
	store := h.storeFor(c)

	if len(store.State().Contracts) == 0 && store.Err() == "" {
		if err := store.LoadAll(c.Request.Context()); err != nil {
			h.metrics.ObserveStoreLoad("collection", "error")
			logger.Error(c.Request.Context(), "collection load failed", "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": store.Err()})
			return
		}
		h.metrics.ObserveStoreLoad("collection", "success")
	}

	h.list(c, store)
}

// Get loads and returns a single contract's detail record.
func (h *ContractHandler) Get(c *gin.Context) {
	store := h.storeFor(c)
	id := c.Param("id")

	if err := store.LoadDetail(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.metrics.ObserveStoreLoad("detail", "not_found")
			c.JSON(http.StatusNotFound, gin.H{"error": store.Err()})
			return
		}
		h.metrics.ObserveStoreLoad("detail", "error")
		logger.Error(c.Request.Context(), "detail load failed", "contract_id", id, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": store.Err()})
		return
	}

	h.metrics.ObserveStoreLoad("detail", "success")
	c.JSON(http.StatusOK, store.Selected())
}

// FiltersRequest carries a partial filter update; absent fields are left
// unchanged.
type FiltersRequest struct {
	SearchTerm *string `json:"searchTerm"`
	Status     *string `json:"status"`
	RiskScore  *string `json:"riskScore"`
}

// SetFilters updates the session's filter criteria. Any filter change
// returns the user to the first page of the new results.
func (h *ContractHandler) SetFilters(c *gin.Context) {
	var req FiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Status != nil && *req.Status != service.FilterAll && !model.ValidStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status filter"})
		return
	}
	if req.RiskScore != nil && *req.RiskScore != service.FilterAll && !model.ValidRisk(*req.RiskScore) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown risk filter"})
		return
	}

	store := h.storeFor(c)
	if req.SearchTerm != nil {
		store.SetSearchTerm(*req.SearchTerm)
	}
	if req.Status != nil {
		store.SetStatusFilter(*req.Status)
	}
	if req.RiskScore != nil {
		store.SetRiskFilter(*req.RiskScore)
	}

	h.list(c, store)
}

// ResetFilters restores the default criteria.
func (h *ContractHandler) ResetFilters(c *gin.Context) {
	store := h.storeFor(c)
	store.ResetFilters()
	h.list(c, store)
}

type pageRequest struct {
	Page int `json:"page" binding:"required"`
}

// SetPage moves the pagination cursor. The value is not validated here;
// out-of-range pages are clamped when the window is computed.
func (h *ContractHandler) SetPage(c *gin.Context) {
	var req pageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	store := h.storeFor(c)
	store.SetCurrentPage(req.Page)
	h.list(c, store)
}

// Stats returns the dashboard aggregates over the full collection.
func (h *ContractHandler) Stats(c *gin.Context) {
	store := h.storeFor(c)

	if len(store.State().Contracts) == 0 && store.Err() == "" {
		if err := store.LoadAll(c.Request.Context()); err != nil {
			h.metrics.ObserveStoreLoad("collection", "error")
			c.JSON(http.StatusBadGateway, gin.H{"error": store.Err()})
			return
		}
		h.metrics.ObserveStoreLoad("collection", "success")
	}

	c.JSON(http.StatusOK, store.Stats())
}
