package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/pkg/logger"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/pkg/metrics"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/service"
)

// ReportHandler exports the session's filtered collection as a download.
type ReportHandler struct {
	contracts *ContractHandler
	metrics   *metrics.Metrics
}

func NewReportHandler(contracts *ContractHandler, m *metrics.Metrics) *ReportHandler {
	return &ReportHandler{contracts: contracts, metrics: m}
}

// Export renders the current filtered collection in the requested format
// (csv by default, or xlsx).
func (h *ReportHandler) Export(c *gin.Context) {
	store := h.contracts.storeFor(c)

	if len(store.State().Contracts) == 0 && store.Err() == "" {
		if err := store.LoadAll(c.Request.Context()); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": store.Err()})
			return
		}
	}

	contracts := store.Filtered()
	stamp := time.Now().Format("2006-01-02")

	format := c.DefaultQuery("format", "csv")
	switch format {
	case "csv":
		out, err := service.BuildCSV(contracts)
		if err != nil {
			logger.Error(c.Request.Context(), "csv export failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
			return
		}
		h.metrics.ObserveExport("csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=contracts-%s.csv", stamp))
		c.Data(http.StatusOK, "text/csv", []byte(out))

	case "xlsx":
		out, err := service.BuildXLSX(contracts)
		if err != nil {
			logger.Error(c.Request.Context(), "xlsx export failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
			return
		}
		h.metrics.ObserveExport("xlsx")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=contracts-%s.xlsx", stamp))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported format: " + format})
	}
}
