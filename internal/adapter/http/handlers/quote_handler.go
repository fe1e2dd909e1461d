package handlers

import (
	"errors"
	"net/http"

	request "biquote/internal/adapter/http/dto/request"
	response "biquote/internal/adapter/http/dto/response"
	"biquote/internal/domain/pricing"
	"biquote/internal/usecase"
	"biquote/internal/usecase/interfaces"
	"biquote/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPreviewPayload = pkg.NewDomainErrorSimple("INVALID_PREVIEW_INPUT", "Invalid preview payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for quote issuance and documents.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// GenerateQuote issues (or reissues) the quote for a submission.
func (h *QuoteHandler) GenerateQuote(c *gin.Context) {
	item, err := h.usecase.GenerateForSubmission(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrRenderFailed) {
			resp := response.FromPipelineItem(item)
			resp.Warning = err.Error()
			c.JSON(http.StatusCreated, resp)
			return
		}
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromPipelineItem(item))
}

// PreviewQuote computes and renders a quote from a raw scope without storing
// anything.
func (h *QuoteHandler) PreviewQuote(c *gin.Context) {
	var payload request.PreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPreviewPayload.HTTPStatus, errInvalidPreviewPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Preview(c.Request.Context(), payload.ToScope(), payload.Label())
	if err != nil {
		if errors.Is(err, usecase.ErrRenderFailed) {
			resp := response.FromQuote(quote)
			resp.Warning = err.Error()
			c.JSON(http.StatusOK, resp)
			return
		}
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// RetryRender re-renders the current quote document after a failed render.
func (h *QuoteHandler) RetryRender(c *gin.Context) {
	item, err := h.usecase.RetryRender(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrRenderFailed) {
			resp := response.FromPipelineItem(item)
			resp.Warning = err.Error()
			c.JSON(http.StatusOK, resp)
			return
		}
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPipelineItem(item))
}

// GetDocument serves a rendered quote PDF.
func (h *QuoteHandler) GetDocument(c *gin.Context) {
	data, err := h.usecase.GetDocument(c.Request.Context(), c.Param("filename"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, "application/pdf", data)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSubmissionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionNotFound):
		return pkg.NewDomainErrorSimple("SUBMISSION_NOT_FOUND", "Submission not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPipelineItemNotFound):
		return pkg.NewDomainErrorSimple("PIPELINE_ITEM_NOT_FOUND", "Pipeline item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotIssued):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ISSUED", "No quote issued for this project", http.StatusConflict)
	case errors.Is(err, interfaces.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Quote document not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrRevisionConflict):
		return pkg.NewDomainErrorSimple("REVISION_CONFLICT", "Pipeline item was changed concurrently", http.StatusConflict)
	case errors.Is(err, pricing.ErrSizeLimitExceeded), errors.Is(err, pricing.ErrInvalidConfiguration):
		return pkg.NewDomainError("QUOTE_CALCULATION_FAILED", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
