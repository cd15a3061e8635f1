package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"support-widget/internal/config"
	"support-widget/internal/domain/entities"
	repocontants "support-widget/internal/domain/interfaces/repository/contants"
	Iservices "support-widget/internal/domain/interfaces/services"
	"support-widget/internal/infra/handlers"
	"support-widget/internal/infra/logger"
	"support-widget/internal/infra/provider"
	"support-widget/internal/infra/repository"
	"support-widget/internal/infra/routes"
	"support-widget/internal/infra/services"
	"support-widget/internal/middleware"
	client "support-widget/internal/pkg"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
)

var devOrigins = []string{
	"http://localhost:5173", "http://localhost:5174", "http://localhost:5175",
	"http://localhost:5176", "http://localhost:5177", "http://localhost:5178",
	"http://localhost:5179",
}

func main() {
	config.LoadEnv()

	ctx := context.Background()
	log := logger.NewLogger(ctx, config.GetBoolOrDefault("LOG_JSON", true))

	mongoClient, err := client.MongoClient(ctx, config.GetEnv("MONGODB_URI"))
	if err != nil {
		log.Fatal(err.Error())
	}
	defer mongoClient.Disconnect(context.Background())
	db := mongoClient.Database(config.GetEnvOrDefault("MONGODB_DATABASE", "furniture"))

	productRepo := repository.NewMongoRepository[entities.Product](db)
	chatResponseRepo := repository.NewMongoRepository[entities.ChatResponseEntry](db)

	productSvc := services.NewCatalogService[entities.Product](productRepo, repocontants.PRODUCTS_COLLECTION, log)
	chatResponseSvc := services.NewCatalogService[entities.ChatResponseEntry](chatResponseRepo, repocontants.CHAT_RESPONSES_COLLECTION, log)

	if _, err := productSvc.Seed(ctx, services.SampleProducts()); err != nil {
		log.Warn(fmt.Sprintf("Failed to seed products: %v", err))
	}
	if _, err := chatResponseSvc.Seed(ctx, services.SampleChatResponses()); err != nil {
		log.Warn(fmt.Sprintf("Failed to seed chat responses: %v", err))
	}

	answerProvider, err := newAnswerProvider(ctx, log)
	if err != nil {
		log.Fatal(err.Error())
	}
	var answerSvc Iservices.IAnswerService = services.NewAnswerService(log, answerProvider)

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(log))

	routes := routes.NewRoutes(
		router,
		handlers.NewCatalogHandlers[entities.Product](log, productSvc, "product"),
		handlers.NewCatalogHandlers[entities.ChatResponseEntry](log, chatResponseSvc, "chat response"),
		handlers.NewChatHandlers(log, answerSvc),
	)

	routes.Init()

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: devOrigins,
		AllowedMethods: []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "Accept"},
	})

	port := config.GetEnvOrDefault("PORT", "3002")
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: corsHandler(router),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	go func() {
		log.Info(fmt.Sprintf("Server is running on port %s", port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(fmt.Sprintf("Error running HTTP server: %s", err))
			os.Exit(1)
		}
	}()

	<-stop
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(fmt.Sprintf("Server forced to shutdown: %v", err))
	} else {
		log.Info("Server stopped gracefully.")
	}
}

func newAnswerProvider(ctx context.Context, log *logger.Logger) (provider.IAnswerProvider, error) {
	switch name := strings.ToLower(config.GetEnvOrDefault("AI_PROVIDER", "gemini")); name {
	case "openai":
		return provider.NewOpenAIProvider(log, config.GetEnv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL")), nil
	case "gemini":
		gemini, err := provider.NewGeminiProvider(ctx, log, config.GetEnv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
		if err != nil {
			return nil, err
		}
		return gemini, nil
	default:
		return nil, fmt.Errorf("unknown AI_PROVIDER %q", name)
	}
}
