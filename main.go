package main

import (
	"log"
	"time"

	"gauntlet-service/internal/cache"
	"gauntlet-service/internal/config"
	"gauntlet-service/internal/db"
	"gauntlet-service/internal/event"
	"gauntlet-service/internal/handlers"
	"gauntlet-service/internal/judge"
	"gauntlet-service/internal/penance"
	"gauntlet-service/internal/repository"
	"gauntlet-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	db.InitMongo(cfg.MongoURI)
	database := db.Client.Database(cfg.MongoDatabase)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitURI != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, gauntlet events will not be published")
	}

	// Redis-backed XP ladder
	var leaderboard cache.LeaderboardCache
	if cfg.RedisAddr != "" {
		leaderboard = cache.NewLeaderboardCache(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	} else {
		log.Println("Redis not configured, leaderboard disabled")
	}

	// Judge0 code execution
	var runner judge.Runner
	if cfg.Judge0APIKey != "" && cfg.Judge0APIHost != "" {
		runner = judge.NewClient(cfg.Judge0APIKey, cfg.Judge0APIHost)
	} else {
		log.Println("Judge0 not configured, code questions will fail grading")
	}

	sessionRepo := repository.NewSessionRepository(database)
	userRepo := repository.NewUserRepository(database)
	questionRepo := repository.NewQuestionRepository(database)

	gauntletService := service.NewGauntletService(
		sessionRepo,
		userRepo,
		questionRepo,
		runner,
		penance.NewGenerator(cfg.PenanceFile),
		leaderboard,
	)
	gauntletHandler := handlers.NewGauntletHandler(gauntletService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api/gauntlet")
	{
		api.GET("/subjects", gauntletHandler.ListSubjects)
		api.POST("/start", func(c *gin.Context) {
			gauntletHandler.StartSession(c)
			if publisher != nil {
				publisher.Publish("gauntlet.session.started", gin.H{"user_id": c.GetHeader("X-User-ID")})
			}
		})
		api.POST("/:id/submit", func(c *gin.Context) {
			gauntletHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish("gauntlet.answer.submitted", gin.H{"user_id": c.GetHeader("X-User-ID"), "session_id": c.Param("id")})
			}
		})
		api.POST("/:id/timeout", func(c *gin.Context) {
			gauntletHandler.HandleTimeout(c)
			if publisher != nil {
				publisher.Publish("gauntlet.answer.timeout", gin.H{"user_id": c.GetHeader("X-User-ID"), "session_id": c.Param("id")})
			}
		})
		api.POST("/:id/quit", func(c *gin.Context) {
			gauntletHandler.QuitSession(c)
			if publisher != nil {
				publisher.Publish("gauntlet.session.quit", gin.H{"user_id": c.GetHeader("X-User-ID"), "session_id": c.Param("id")})
			}
		})
		api.POST("/weakness-drill", gauntletHandler.StartWeaknessDrill)
	}

	if leaderboard != nil {
		leaderboardHandler := handlers.NewLeaderboardHandler(leaderboard)
		r.GET("/api/leaderboard", leaderboardHandler.GetTop)
		r.GET("/api/leaderboard/rank", leaderboardHandler.GetRank)
	}

	log.Printf("Gauntlet service listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
