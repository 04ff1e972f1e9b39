package handler

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medlmo/gcpRSM/internal/service"
	"github.com/medlmo/gcpRSM/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves downloadable snapshots of the store.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Contracts downloads the contract register as an Excel workbook.
// GET /api/export/contracts
func (h *ExportHandler) Contracts(c *gin.Context) {
	buf, filename, err := h.exportSvc.ContractRegister(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExportNoContracts):
			response.NotFound(c, 21001, "no contracts to export")
		default:
			response.InternalError(c)
		}
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Deadlines downloads the published tender deadlines as an iCalendar
// feed.
// GET /api/export/deadlines
func (h *ExportHandler) Deadlines(c *gin.Context) {
	buf, filename, err := h.exportSvc.DeadlineCalendar(c.Request.Context(), time.Now())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}
