package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"gamezone/internal/adapter/api"
	"gamezone/internal/adapter/api/handler"
	apimiddleware "gamezone/internal/adapter/api/middleware"
	"gamezone/internal/adapter/api/router"
	"gamezone/internal/adapter/repository"
	"gamezone/internal/domain/service"
	"gamezone/internal/infrastructure/firebase"
	"gamezone/internal/infrastructure/websocket"
	"gamezone/internal/usecase"
	"gamezone/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./serviceAccount.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	catalogUseCase := usecase.NewCatalogUseCase(productRepo)
	if err := catalogUseCase.Load(ctx); err != nil {
		// Browsing an empty catalog still works; keep serving.
		log.Printf("Catalog load failed, starting with an empty catalog: %v", err)
	}

	sessionUseCase := usecase.NewSessionUseCase(catalogUseCase, userRepo, wsManager)
	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient, sessionUseCase)

	paymentProcessor := service.NewSandboxPaymentProcessor(cfg.PaymentSuccessRate, cfg.PaymentDelay)
	checkoutUseCase := usecase.NewCheckoutUseCase(sessionUseCase, orderRepo, userRepo, paymentProcessor, wsManager)

	handler.Setup(authUseCase, catalogUseCase, sessionUseCase, checkoutUseCase)
	handler.SetupHealthHandler(catalogUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	wsHandler := handler.NewWebSocketHandler(wsManager)

	router.Setup(e, authMiddleware)
	router.SetupWebSocketRouter(e, wsHandler, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
