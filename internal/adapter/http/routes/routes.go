package routes

import (
	"log"
	"strconv"

	_ "biquote/docs" // This will be auto-generated
	"biquote/internal/adapter/http/handlers"
	repository2 "biquote/internal/adapter/persistence/repository"
	"biquote/internal/domain/pricing"
	"biquote/internal/infrastructure/database"
	"biquote/internal/infrastructure/documents"
	"biquote/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	submissionRepo := repository2.NewSubmissionDynamoRepository(ddb)
	pipelineRepo := repository2.NewPipelineDynamoRepository(ddb)

	renderer := documents.NewPDFRenderer()
	documentStore := documents.NewFileStore()
	policy := pricing.DefaultPolicy()

	submissionUseCase := usecase.NewSubmissionUseCase(submissionRepo, pipelineRepo)
	pipelineUseCase := usecase.NewPipelineUseCase(pipelineRepo, submissionRepo, renderer, documentStore, policy)
	quoteUseCase := usecase.NewQuoteUseCase(submissionRepo, pipelineRepo, renderer, documentStore, policy)

	submissionHandler := handlers.NewSubmissionHandler(submissionUseCase)
	pipelineHandler := handlers.NewPipelineHandler(pipelineUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotingRoutes(v1, submissionHandler, pipelineHandler, quoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
