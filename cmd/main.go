package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/dkoroteev/telegpt/internal/ai"
	"github.com/dkoroteev/telegpt/internal/delivery"
	"github.com/dkoroteev/telegpt/internal/messages"
	"github.com/dkoroteev/telegpt/internal/telegram"
	"github.com/dkoroteev/telegpt/internal/user"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / DB INIT
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_TOKEN is not set")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db ping failed: %v", err)
	}
	defer db.Close()

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// REPOSITORIES
	// =========================================================================

	userRepo := user.NewInfra(db)
	messageRepo := messages.NewInfra(db)

	// =========================================================================
	// CLIENTS (AI)
	// =========================================================================

	provider, err := ai.GetProvider(os.Getenv("ACTIVE_PROVIDER"))
	if err != nil {
		log.Fatalf("bad ACTIVE_PROVIDER: %v", err)
	}

	aiClient := ai.NewClient(os.Getenv("OPENAI_API_KEY"), provider)

	// =========================================================================
	// SERVICES
	// =========================================================================

	userService := user.NewService(userRepo)
	messageService := messages.NewService(messageRepo)
	aiService := ai.NewService(aiClient, provider)

	// схема создаётся и на старте процесса, и на каждом /start
	userService.EnsureSchema(context.Background())
	messageService.EnsureSchema(context.Background())

	// =========================================================================
	// TELEGRAM BOT
	// =========================================================================

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Fatalf("failed to init telegram bot: %v", err)
	}
	log.Printf("[bot_app] ready: @%s", bot.Self.UserName)

	botApp := telegram.NewBotApp(bot, userService, messageService, aiService)
	go botApp.Run()

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	h := delivery.NewHandler(userService, messageService, zl)
	delivery.RegisterRoutes(r, h)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "telegpt",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
