package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"LinkUp/internal/api/middleware"
	"LinkUp/internal/api/routes"
	"LinkUp/internal/auth"
	"LinkUp/internal/blobstore"
	"LinkUp/internal/config"
	"LinkUp/internal/core/comments"
	"LinkUp/internal/core/likes"
	"LinkUp/internal/core/media"
	"LinkUp/internal/core/notifications"
	"LinkUp/internal/core/posts"
	"LinkUp/internal/core/users"
	postgresRepo "LinkUp/internal/db/postgres"
	"LinkUp/internal/realtime"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database")

	// Run migrations
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}

	if err := goose.Up(db, "internal/db/migrations"); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	// Comment push broker: NATS when configured, in-process otherwise
	var broker realtime.Broker
	var diskStore *blobstore.DiskStore
	if cfg.NatsURL != "" {
		natsBroker, err := realtime.NewNatsBroker(cfg.NatsURL)
		if err != nil {
			log.Fatal("Failed to connect to NATS:", err)
		}
		defer natsBroker.Close()
		broker = natsBroker
		log.Println("Using NATS comment broker:", cfg.NatsURL)
	} else {
		broker = realtime.NewMemoryBroker()
	}

	// Media storage: remote object store when configured, local disk otherwise
	var store media.Store
	if cfg.MediaEndpoint != "" {
		store = blobstore.NewHTTPStore(cfg.MediaEndpoint, cfg.MediaServiceKey)
		log.Println("Using remote media store:", cfg.MediaEndpoint)
	} else {
		diskStore, err = blobstore.NewDiskStore(cfg.UploadDir, "")
		if err != nil {
			log.Fatal("Failed to prepare upload directory:", err)
		}
		store = diskStore
	}

	// Initialize repositories and services
	userRepo := postgresRepo.NewUserRepository(db)
	postRepo := postgresRepo.NewPostRepository(db)
	likeRepo := postgresRepo.NewLikeRepository(db)
	commentRepo := postgresRepo.NewCommentRepository(db)
	notificationRepo := postgresRepo.NewNotificationRepository(db)

	tokenIssuer := auth.NewTokenIssuer(cfg.SessionSecret, cfg.SessionTTL)
	mediaService := media.NewMediaService(store)
	userService := users.NewUserService(userRepo, tokenIssuer)
	postService := posts.NewPostService(postRepo, mediaService)
	likeService := likes.NewLikeService(likeRepo)
	notificationService := notifications.NewNotificationService(notificationRepo)
	commentService := comments.NewCommentService(
		commentRepo,
		postRepo,
		notifications.NewCommentNotifier(notificationService),
		broker,
	)

	authMiddleware := middleware.NewAuthMiddleware(tokenIssuer)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(rateLimiter.Middleware)

	routes.RegisterAuthRoutes(r, userService, authMiddleware)
	routes.RegisterUserRoutes(r, userService, authMiddleware)
	routes.RegisterPostRoutes(r, postService, authMiddleware)
	routes.RegisterLikeRoutes(r, likeService, authMiddleware)
	routes.RegisterCommentRoutes(r, commentService, broker, authMiddleware)
	routes.RegisterNotificationRoutes(r, notificationService, authMiddleware)
	routes.RegisterMediaRoutes(r, mediaService, authMiddleware)

	// Local disk storage serves uploads straight off the filesystem
	if diskStore != nil {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(diskStore.Dir())))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	fmt.Printf("LinkUp API starting on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
