package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "biquote/internal/adapter/http/dto/request"
	response "biquote/internal/adapter/http/dto/response"
	"biquote/internal/intake"
	"biquote/internal/usecase"
	"biquote/internal/usecase/interfaces"
	"biquote/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSubmissionPayload = pkg.NewDomainErrorSimple("INVALID_SUBMISSION_INPUT", "Invalid submission payload", http.StatusBadRequest)

// SubmissionHandler handles HTTP requests for pricing form submissions.

type SubmissionHandler struct {
	usecase usecase.ISubmissionUseCase
}

func NewSubmissionHandler(uc usecase.ISubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{usecase: uc}
}

// CreateSubmission stores a new pricing form and opens its pipeline item.
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var payload request.SubmissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubmissionPayload.HTTPStatus, errInvalidSubmissionPayload.ToHTTPError())
		return
	}

	s, err := payload.ToSubmission()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_DATE", err.Error(), http.StatusBadRequest).ToHTTPError())
		return
	}

	created, item, err := h.usecase.Create(c.Request.Context(), s)
	if err != nil {
		respondSubmissionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.CreatedSubmissionResponse{
		Submission:   response.FromSubmission(created),
		PipelineItem: response.FromPipelineItem(item),
	})
}

func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSubmissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSubmission(s))
}

func (h *SubmissionHandler) UpdateSubmission(c *gin.Context) {
	var payload request.SubmissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubmissionPayload.HTTPStatus, errInvalidSubmissionPayload.ToHTTPError())
		return
	}

	s, err := payload.ToSubmission()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_DATE", err.Error(), http.StatusBadRequest).ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), s)
	if err != nil {
		respondSubmissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSubmission(updated))
}

func (h *SubmissionHandler) DeleteSubmission(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondSubmissionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSubmissions returns one page of submissions; with a q parameter it
// searches by client name, project title or analyst.
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	limit64, _ := strconv.ParseInt(c.Query("limit"), 10, 32)
	cursor := c.Query("cursor")

	var (
		page interfaces.SubmissionPage
		err  error
	)
	if q := c.Query("q"); q != "" {
		page, err = h.usecase.Search(c.Request.Context(), q, int32(limit64), cursor)
	} else {
		page, err = h.usecase.List(c.Request.Context(), int32(limit64), cursor)
	}
	if err != nil {
		respondSubmissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSubmissionPage(page.Items, page.NextCursor))
}

// respondSubmissionError writes the mapped error response. Validation
// failures carry the per-field messages so the form can surface them all at
// once.
func respondSubmissionError(c *gin.Context, err error) {
	var fe intake.FieldErrors
	if errors.As(err, &fe) {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "VALIDATION_FAILED",
			"message": "Submission failed validation",
			"fields":  fe,
		})
		return
	}

	appErr := mapSubmissionError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapSubmissionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSubmissionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrInvalidCursor):
		return pkg.NewDomainErrorSimple("INVALID_CURSOR", "Invalid page cursor", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionNotFound):
		return pkg.NewDomainErrorSimple("SUBMISSION_NOT_FOUND", "Submission not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
