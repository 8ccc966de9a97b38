package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Aashish23092/ledger-reconciliation/dto"
	"github.com/Aashish23092/ledger-reconciliation/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// MismatchCountHeader carries the mismatch count next to the downloaded workbook.
const MismatchCountHeader = "X-Mismatch-Count"

type ReconcileHandler struct {
	reconcileService *service.ReconcileService
	outputFilename   string
}

func NewReconcileHandler(reconcileService *service.ReconcileService, outputFilename string) *ReconcileHandler {
	return &ReconcileHandler{
		reconcileService: reconcileService,
		outputFilename:   outputFilename,
	}
}

// Reconcile handles the POST /reconcile endpoint and streams back the
// annotated workbook.
func (h *ReconcileHandler) Reconcile(c *gin.Context) {
	result, ok := h.run(c)
	if !ok {
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(h.outputFilename)))
	c.Header(MismatchCountHeader, strconv.Itoa(result.MismatchCount))
	c.Data(http.StatusOK, xlsxMIME, result.Workbook)
}

// Summary handles the POST /reconcile/summary endpoint and returns the
// mismatch report as JSON.
func (h *ReconcileHandler) Summary(c *gin.Context) {
	result, ok := h.run(c)
	if !ok {
		return
	}

	mismatches := result.Mismatches
	if mismatches == nil {
		mismatches = []dto.Mismatch{}
	}
	highlights := result.Highlights
	if highlights == nil {
		highlights = []dto.Coordinate{}
	}
	c.JSON(http.StatusOK, dto.ReconcileSummaryResponse{
		MismatchCount: result.MismatchCount,
		FlaggedRows:   len(result.FlaggedRows),
		Mismatches:    mismatches,
		Highlights:    highlights,
		ProcessedAt:   time.Now().Format(time.RFC3339),
	})
}

func (h *ReconcileHandler) run(c *gin.Context) (*dto.ReconcileResult, bool) {
	log.Info().Msg("Received reconciliation request")

	// Parse multipart form
	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return nil, false
	}

	request := &dto.ReconcileRequest{Files: form.File["files[]"]}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid upload", err)
		return nil, false
	}

	log.Info().Int("files", len(request.Files)).Msg("Processing uploaded workbooks")

	files, err := request.ReadFiles()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to read uploaded files", err)
		return nil, false
	}

	result, err := h.reconcileService.Reconcile(files)
	if err != nil {
		h.sendError(c, statusFor(err), "Failed to reconcile ledger", err)
		return nil, false
	}

	log.Info().Int("mismatches", result.MismatchCount).Msg("Reconciliation completed successfully")
	return result, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dto.ErrInputCount),
		errors.Is(err, dto.ErrUnsupportedFile),
		errors.Is(err, dto.ErrUnreadableUpload):
		return http.StatusBadRequest
	case errors.Is(err, dto.ErrNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, dto.ErrInputCount):
		return "INPUT_COUNT"
	case errors.Is(err, dto.ErrNotFound):
		return "NOT_FOUND"
	default:
		return "RECONCILIATION_FAILED"
	}
}

// sendError sends a structured error response
func (h *ReconcileHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Error().Err(err).Int("status", statusCode).Msg(message)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   errorCode(err),
		Message: errorMsg,
		Code:    statusCode,
	})
}
