package app

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"comictrack/internal/config"
	"comictrack/internal/handlers"
	"comictrack/internal/repositories"
	"comictrack/internal/routes"
	"comictrack/internal/scheduler"
	"comictrack/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	comicRepo := repositories.NewComicRepository(db)
	genreRepo := repositories.NewGenreRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	resetTokenRepo := repositories.NewResetTokenRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	// === Services ===
	authService := services.NewAuthService(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLDays)*24*time.Hour)
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)

	var telegramService *services.TelegramService
	if cfg.Telegram.Enabled && cfg.Telegram.BotToken != "" {
		telegramService, err = services.NewTelegramService(cfg.Telegram.BotToken)
		if err != nil {
			// push channel is optional, run without it
			log.Printf("telegram disabled: %v", err)
			telegramService = nil
		}
	}

	userService := services.NewUserService(userRepo, authService)
	resetService := services.NewPasswordResetService(userRepo, resetTokenRepo, emailService, authService)
	comicService := services.NewComicService(comicRepo)
	genreService := services.NewGenreService(genreRepo)
	favoriteService := services.NewFavoriteService(favoriteRepo, comicRepo)

	var push services.Pusher
	if telegramService != nil {
		push = telegramService
	}
	notificationService := services.NewNotificationService(
		comicRepo,
		notificationRepo,
		services.NewOwnerSubscriberResolver(comicRepo),
		push,
	)

	// === Scheduler ===
	if cfg.Scheduler.Enabled {
		sched := scheduler.New(notificationService, cfg.Scheduler.Hour, cfg.Scheduler.Minute)
		sched.Start()
		defer sched.Stop()
	}

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, resetService, emailService)
	userHandler := handlers.NewUserHandler(userService)
	comicHandler := handlers.NewComicHandler(comicService)
	genreHandler := handlers.NewGenreHandler(genreService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	routes.SetupRoutes(
		router,
		authService,
		authHandler,
		userHandler,
		comicHandler,
		genreHandler,
		favoriteHandler,
		notificationHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
