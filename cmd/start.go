/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tieubaoca/docsum-be/config"
	"github.com/tieubaoca/docsum-be/handler"
	"github.com/tieubaoca/docsum-be/service"
)

// startServerCmd represents the startServer command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the summarization server",
	Long:  `Starts the HTTP server that accepts document uploads and returns summaries`,
	Run: func(cmd *cobra.Command, args []string) {

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}

		documentService, aiService := buildPipeline(cfg)

		fileService, err := service.NewFileService(cfg.UploadDir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to prepare upload directory")
		}

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		uploadHandler := handler.NewUploadHandler(documentService, fileService)
		documentHandler := handler.NewDocumentHandler(cfg.UploadDir)
		wsService := service.NewWebSocketService(aiService, cfg.Model)

		// Setup Gin router
		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		apiV1 := router.Group("/api/v1")
		apiV1.POST("/upload", uploadHandler.UploadDocumentHandler)
		apiV1.GET("/documents", documentHandler.ServeDocument)
		apiV1.GET("/ws", func(c *gin.Context) {
			wsService.HandleSummarize(c.Writer, c.Request)
		})

		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}

// buildPipeline wires the OCR, parser and model collaborators into the
// document pipeline. Missing AWS credentials disable Textract; extraction
// then relies on the local PDF text layer only.
func buildPipeline(cfg *config.Config) (*service.DocumentService, service.AIService) {
	var analyzer service.DocumentAnalyzer
	if os.Getenv("AWS_ACCESS_KEY_ID") != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load AWS config")
		}
		analyzer = service.NewTextractAnalyzer(awsCfg)
	} else {
		log.Warn().Msg("AWS credentials not set, OCR disabled, extraction uses the local PDF text layer")
	}

	var aiService service.AIService
	switch cfg.AIProvider {
	case "openai":
		aiService = service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey)
	default:
		keys := make([]string, 0)
		for _, key := range strings.Split(cfg.GeminiAPIKey, ",") {
			if key = strings.TrimSpace(key); key != "" {
				keys = append(keys, key)
			}
		}
		gemini, err := service.NewGeminiService(keys)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create Gemini client, is GEMINI_API_KEY set?")
		}
		aiService = gemini
	}

	extractService := service.NewExtractService(analyzer, service.NewPDFService())
	summaryService := service.NewSummaryService(aiService, cfg.Model, cfg.FallbackModel, cfg.MaxWords, cfg.MultiDocMaxWords)
	return service.NewDocumentService(extractService, summaryService), aiService
}
