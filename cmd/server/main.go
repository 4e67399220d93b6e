package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/dkovacev/mingle/internal/auth"
	"github.com/dkovacev/mingle/internal/cache"
	"github.com/dkovacev/mingle/internal/config"
	"github.com/dkovacev/mingle/internal/database"
	postgresrepo "github.com/dkovacev/mingle/internal/repository/postgres"
	"github.com/dkovacev/mingle/internal/service"
	"github.com/dkovacev/mingle/internal/transport/http/handlers"
	"github.com/dkovacev/mingle/internal/transport/http/middleware"
	"github.com/dkovacev/mingle/internal/transport/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	if err := database.Migrate(context.Background(), cfg); err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	postRepo := postgresrepo.NewPostRepo(pool)

	// Auth primitives
	cipher, err := auth.NewPasswordCipher(cfg.PasswordSecret)
	if err != nil {
		log.Fatal(err)
	}
	tokens := auth.NewTokenService(cfg.AccessTokenSecret, auth.TokenTTL)

	// WebSocket hub
	hub := ws.NewHub()
	go hub.Run()
	notifier := ws.NewHubNotifier(hub)

	// Timeline cache (nil when MEMCACHED_ADDR is unset)
	timelines := cache.NewTimelineCache(cfg.MemcachedAddr)
	if timelines != nil {
		log.Printf("Timeline caching enabled via %s", cfg.MemcachedAddr)
	}

	// Services
	authService := service.NewAuthService(userRepo, cipher, tokens)
	userService := service.NewUserService(userRepo, cipher, notifier)
	postService := service.NewPostService(postRepo, userRepo, timelines, notifier)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	postHandler := handlers.NewPostHandler(postService)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	r.Route("/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokens))
			r.Put("/", userHandler.Update)
			r.Delete("/", userHandler.Delete)
			r.Put("/follow", userHandler.Follow)
			r.Put("/unfollow", userHandler.Unfollow)
		})
		// Nested so the {id} param is bound before RequireOwner runs.
		r.Route("/{id}", func(r chi.Router) {
			r.Use(middleware.RequireOwner(tokens))
			r.Put("/", userHandler.Update)
			r.Delete("/", userHandler.Delete)
		})
	})

	r.Route("/posts", func(r chi.Router) {
		r.Use(middleware.Auth(tokens))
		r.Post("/", postHandler.Create)
		r.Put("/", postHandler.Update)
		r.Delete("/", postHandler.Delete)
		r.Put("/like", postHandler.Like)
		r.Get("/timeline", postHandler.Timeline)
	})

	r.Get("/ws", ws.ServeWS(hub, tokens))

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
