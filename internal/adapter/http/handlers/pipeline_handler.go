package handlers

import (
	"errors"
	"net/http"

	request "biquote/internal/adapter/http/dto/request"
	response "biquote/internal/adapter/http/dto/response"
	"biquote/internal/domain/entities"
	"biquote/internal/domain/pricing"
	"biquote/internal/usecase"
	"biquote/internal/usecase/interfaces"
	"biquote/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidStagePayload = pkg.NewDomainErrorSimple("INVALID_STAGE_INPUT", "Invalid stage payload", http.StatusBadRequest)

// PipelineHandler handles HTTP requests for the sales pipeline board.

type PipelineHandler struct {
	usecase usecase.IPipelineUseCase
}

func NewPipelineHandler(uc usecase.IPipelineUseCase) *PipelineHandler {
	return &PipelineHandler{usecase: uc}
}

func (h *PipelineHandler) ListPipeline(c *gin.Context) {
	entries, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPipelineEntries(entries))
}

func (h *PipelineHandler) GetPipelineItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPipelineItem(item))
}

// SetStage moves a pipeline item onto another board stage. A failed document
// render after the quote was committed is reported as a warning on an
// otherwise successful response; the quote itself stays valid.
func (h *PipelineHandler) SetStage(c *gin.Context) {
	var payload request.StageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStagePayload.HTTPStatus, errInvalidStagePayload.ToHTTPError())
		return
	}

	item, err := h.usecase.SetStage(c.Request.Context(), c.Param("id"), entities.Stage(payload.Stage), payload.Actor, payload.Revision)
	if err != nil {
		if errors.Is(err, usecase.ErrRenderFailed) {
			resp := response.FromPipelineItem(item)
			resp.Warning = err.Error()
			c.JSON(http.StatusOK, resp)
			return
		}
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPipelineItem(item))
}

func mapPipelineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownStage):
		return pkg.NewDomainErrorSimple("UNKNOWN_STAGE", "Unknown pipeline stage", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPipelineItemNotFound):
		return pkg.NewDomainErrorSimple("PIPELINE_ITEM_NOT_FOUND", "Pipeline item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubmissionNotFound):
		return pkg.NewDomainErrorSimple("SUBMISSION_NOT_FOUND", "Submission not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrRevisionConflict):
		return pkg.NewDomainErrorSimple("REVISION_CONFLICT", "Pipeline item was changed concurrently", http.StatusConflict)
	case errors.Is(err, pricing.ErrSizeLimitExceeded), errors.Is(err, pricing.ErrInvalidConfiguration):
		return pkg.NewDomainError("QUOTE_CALCULATION_FAILED", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
