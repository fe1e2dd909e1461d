package routes

import (
	"biquote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSubmissions = "/submissions"
	PathPipeline    = "/pipeline"
	PathQuotes      = "/quotes"
)

func addQuotingRoutes(rg *gin.RouterGroup, submissionHandler *handlers.SubmissionHandler, pipelineHandler *handlers.PipelineHandler, quoteHandler *handlers.QuoteHandler) {
	submissions := rg.Group(PathSubmissions)
	{
		submissions.POST("", submissionHandler.CreateSubmission)
		submissions.GET("", submissionHandler.ListSubmissions)
		submissions.GET("/:id", submissionHandler.GetSubmission)
		submissions.PUT("/:id", submissionHandler.UpdateSubmission)
		submissions.DELETE("/:id", submissionHandler.DeleteSubmission)
		submissions.POST("/:id/quote", quoteHandler.GenerateQuote)
		submissions.POST("/:id/quote/render", quoteHandler.RetryRender)
	}

	pipeline := rg.Group(PathPipeline)
	{
		pipeline.GET("", pipelineHandler.ListPipeline)
		pipeline.GET("/:id", pipelineHandler.GetPipelineItem)
		pipeline.PATCH("/:id/stage", pipelineHandler.SetStage)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/preview", quoteHandler.PreviewQuote)
		quotes.GET("/documents/:filename", quoteHandler.GetDocument)
	}
}
