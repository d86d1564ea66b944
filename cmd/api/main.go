package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"smartserver/internal/adapter/api/handler"
	apimiddleware "smartserver/internal/adapter/api/middleware"
	"smartserver/internal/adapter/api/router"
	"smartserver/internal/adapter/repository"
	domainrepo "smartserver/internal/domain/repository"
	"smartserver/internal/infrastructure/firebase"
	"smartserver/internal/infrastructure/mongodb"
	"smartserver/internal/usecase"
	"smartserver/pkg/config"
	"smartserver/pkg/logger"
)

type stores struct {
	products domainrepo.DocumentRepository
	bids     domainrepo.DocumentRepository
	close    func(ctx context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration: %v", err)
	}
	logger.Configure(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opt, err := firebase.CredentialsOption(cfg.FirebaseServiceKey, cfg.FirebaseServiceAccountPath)
	if err != nil {
		logger.Fatal("Failed to load Firebase credentials: %v", err)
	}

	firebaseApp, err := firebase.NewApp(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		logger.Fatal("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize Firebase Auth: %v", err)
	}

	st, err := openStores(ctx, cfg, opt)
	if err != nil {
		logger.Fatal("Failed to open %s store: %v", cfg.StoreDriver, err)
	}

	productUseCase := usecase.NewProductUseCase(st.products)
	bidUseCase := usecase.NewBidUseCase(st.bids)

	pinger, _ := st.products.(domainrepo.Pinger)
	handlers := router.Handlers{
		Health:  handler.NewHealthHandler(pinger),
		Product: handler.NewProductHandler(productUseCase),
		Bid:     handler.NewBidHandler(bidUseCase),
	}

	authMiddleware := apimiddleware.NewAuthMiddleware(firebase.NewFirebaseAuthClient(authClient))
	e := router.New(handlers, authMiddleware, cfg.AllowOrigins)

	go func() {
		logger.Info("Server running on %s (store=%s)", cfg.Addr(), cfg.StoreDriver)
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to serve: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutCtx); err != nil {
		logger.Error("HTTP shutdown failed: %v", err)
	}
	if err := st.close(shutCtx); err != nil {
		logger.Error("Store close failed: %v", err)
	}
}

func openStores(ctx context.Context, cfg *config.Config, opt option.ClientOption) (*stores, error) {
	switch cfg.StoreDriver {
	case config.StoreFirestore:
		client, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
		if err != nil {
			return nil, err
		}
		return &stores{
			products: repository.NewFirestoreDocumentRepository(client, usecase.ProductsCollection),
			bids:     repository.NewFirestoreDocumentRepository(client, usecase.BidsCollection),
			close:    func(context.Context) error { return client.Close() },
		}, nil

	case config.StoreMemory:
		logger.Warn("Using in-memory store; data is lost on restart")
		return &stores{
			products: repository.NewMemoryDocumentRepository(usecase.ProductsCollection),
			bids:     repository.NewMemoryDocumentRepository(usecase.BidsCollection),
			close:    func(context.Context) error { return nil },
		}, nil

	default:
		client, err := mongodb.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.DatabaseName)
		return &stores{
			products: repository.NewMongoDocumentRepository(db, usecase.ProductsCollection),
			bids:     repository.NewMongoDocumentRepository(db, usecase.BidsCollection),
			close:    client.Disconnect,
		}, nil
	}
}
