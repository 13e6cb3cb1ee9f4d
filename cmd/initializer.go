package main

import (
	"database/sql"
	"log"

	"github.com/redis/go-redis/v9"

	"sevaBack/internal/geoindex"
	"sevaBack/internal/handlers"
	"sevaBack/internal/repositories"
	"sevaBack/internal/services"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB

	providerRepo *repositories.ProviderRepository
	bookingRepo  *repositories.BookingRepository
	reviewRepo   *repositories.ReviewRepository
	messageRepo  *repositories.MessageRepository

	providerService *services.ProviderService
	bookingService  *services.BookingService
	reviewService   *services.ReviewService
	messageService  *services.MessageService

	providerHandler *handlers.ProviderHandler
	categoryHandler *handlers.CategoryHandler
	bookingHandler  *handlers.BookingHandler
	reviewHandler   *handlers.ReviewHandler
	messageHandler  *handlers.MessageHandler

	wsManager *WebSocketManager
}

func initializeApp(db *sql.DB, rdb *redis.Client, errorLog, infoLog *log.Logger) *application {
	// Repositories
	providerRepo := &repositories.ProviderRepository{DB: db}
	bookingRepo := &repositories.BookingRepository{DB: db}
	reviewRepo := &repositories.ReviewRepository{DB: db}
	messageRepo := &repositories.MessageRepository{DB: db}

	locator := geoindex.NewProviderLocator(rdb)

	// Services
	providerService := &services.ProviderService{ProviderRepo: providerRepo, Locator: locator}
	bookingService := &services.BookingService{BookingRepo: bookingRepo, ProviderRepo: providerRepo}
	reviewService := &services.ReviewService{ReviewsRepo: reviewRepo, BookingRepo: bookingRepo, ProviderRepo: providerRepo}
	messageService := &services.MessageService{MessageRepo: messageRepo, BookingRepo: bookingRepo}
	categoryService := &services.CategoryService{}

	// Handlers
	providerHandler := &handlers.ProviderHandler{Service: providerService}
	categoryHandler := &handlers.CategoryHandler{Service: categoryService}
	bookingHandler := &handlers.BookingHandler{Service: bookingService}
	reviewHandler := &handlers.ReviewHandler{Service: reviewService}
	messageHandler := &handlers.MessageHandler{Service: messageService}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		db:              db,
		providerRepo:    providerRepo,
		bookingRepo:     bookingRepo,
		reviewRepo:      reviewRepo,
		messageRepo:     messageRepo,
		providerService: providerService,
		bookingService:  bookingService,
		reviewService:   reviewService,
		messageService:  messageService,
		providerHandler: providerHandler,
		categoryHandler: categoryHandler,
		bookingHandler:  bookingHandler,
		reviewHandler:   reviewHandler,
		messageHandler:  messageHandler,
		wsManager:       NewWebSocketManager(),
	}
}
