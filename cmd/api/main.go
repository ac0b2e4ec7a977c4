package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/nvoronin/expense-service/internal/config"
	"github.com/nvoronin/expense-service/internal/handler"
	"github.com/nvoronin/expense-service/internal/middleware"
	"github.com/nvoronin/expense-service/internal/repository"
	"github.com/nvoronin/expense-service/internal/service"
	"github.com/nvoronin/expense-service/internal/utils/email"
	"github.com/nvoronin/expense-service/internal/watcher"
)

func main() {
	_ = godotenv.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}
	if err := repository.RunMigrations(db); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, repo, repo, logger, cfg)
	h := handler.NewHandler(svc, logger)

	// Budget alerts run only when SMTP is configured
	if cfg.BudgetAlertsEnabled() {
		sender := email.NewSender(cfg, logger)
		w := watcher.NewBudgetWatcher(svc, sender, logger)
		if err := w.Start(cfg.BudgetAlertCron); err != nil {
			logger.Fatalf("Failed to start budget watcher: %v", err)
		}
		defer w.Stop()
	}

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/users/me", h.GetProfile).Methods("GET")
	authRouter.HandleFunc("/users/me", h.UpdateProfile).Methods("PUT")
	authRouter.HandleFunc("/categories", h.ListCategories).Methods("GET")
	authRouter.HandleFunc("/categories", h.CreateCategory).Methods("POST")
	authRouter.HandleFunc("/categories/{id}", h.DeleteCategory).Methods("DELETE")
	authRouter.HandleFunc("/expenses", h.QueryTransactions).Methods("GET")
	authRouter.HandleFunc("/expenses", h.CreateTransaction).Methods("POST")
	authRouter.HandleFunc("/expenses/{id}", h.GetTransaction).Methods("GET")
	authRouter.HandleFunc("/expenses/{id}", h.UpdateTransaction).Methods("PUT")
	authRouter.HandleFunc("/expenses/{id}", h.DeleteTransaction).Methods("DELETE")
	authRouter.HandleFunc("/summary/monthly", h.MonthlySummary).Methods("GET")
	authRouter.HandleFunc("/export/monthly", h.ExportMonthly).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
