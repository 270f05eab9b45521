package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/vastrastudio/vastra-backend/api"
	"github.com/vastrastudio/vastra-backend/config"
	"github.com/vastrastudio/vastra-backend/session"
	"github.com/vastrastudio/vastra-backend/store"
	"github.com/vastrastudio/vastra-backend/tryon"
	"github.com/vastrastudio/vastra-backend/utils"
)

func buildStore() store.Store {
	switch config.StateBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		log.Printf("Using Redis state backend at %s", config.RedisAddr)
		return store.NewRedis(client)
	case "memory":
		log.Println("Using in-memory state backend (state is lost on restart)")
		return store.NewMemory()
	default:
		if err := utils.ConnectMongo(config.MongoURI); err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		s := store.NewMongo(utils.GetDatabase(config.MongoDatabase))
		if err := s.EnsureIndexes(context.Background()); err != nil {
			log.Fatalf("Failed to create MongoDB indexes: %v", err)
		}
		return s
	}
}

func main() {
	config.LoadConfig()

	st := buildStore()
	gemini := utils.Gemini{}
	sessions := session.NewService(st, gemini, utils.Mailer{}, utils.GenerateToken)
	fittings := tryon.NewOrchestrator(gemini, utils.MediaStore{}, sessions)
	server := api.NewServer(sessions, fittings, st)

	// CORS Middleware
	corsMiddleware := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return corsMiddleware(api.AuthMiddleware(h))
	}

	// Public auth surface
	http.HandleFunc("/auth/signup", corsMiddleware(server.SignupHandler))
	http.HandleFunc("/auth/login", corsMiddleware(server.LoginHandler))
	http.HandleFunc("/auth/google/login", corsMiddleware(server.GoogleLoginHandler))
	http.HandleFunc("/auth/google/callback", corsMiddleware(server.GoogleCallbackHandler))
	http.HandleFunc("/auth/logout", protected(server.LogoutHandler))

	// Session state and navigation
	http.HandleFunc("/state", protected(server.StateHandler))
	http.HandleFunc("/navigate", protected(server.NavigateHandler))
	http.HandleFunc("/upload-portrait", protected(server.UploadPortraitHandler))

	// Catalog
	http.HandleFunc("/catalog", protected(server.CatalogHandler))
	http.HandleFunc("/recommendations", protected(server.RecommendationsHandler))
	http.HandleFunc("/catalog/import", protected(server.ImportHandler))

	// Fitting room
	http.HandleFunc("/tryon/select", protected(server.SelectGarmentHandler))
	http.HandleFunc("/tryon/angle", protected(server.RequestAngleHandler))
	http.HandleFunc("/tryon/color", protected(server.ChangeColorHandler))
	http.HandleFunc("/tryon/state", protected(server.FittingStateHandler))
	http.HandleFunc("/tryon/save", protected(server.SaveLookHandler))
	http.HandleFunc("/designer", protected(server.DesignerHandler))

	// Cart
	http.HandleFunc("/cart", protected(server.CartHandler))
	http.HandleFunc("/cart/add", protected(server.AddToCartHandler))
	http.HandleFunc("/cart/remove", protected(server.RemoveFromCartHandler))
	http.HandleFunc("/cart/clear", protected(server.ClearCartHandler))

	// Closet and history
	http.HandleFunc("/closet", protected(server.ClosetHandler))
	http.HandleFunc("/closet/update", protected(server.UpdateLookHandler))
	http.HandleFunc("/closet/delete", protected(server.DeleteLookHandler))
	http.HandleFunc("/history", protected(server.HistoryHandler))
	http.HandleFunc("/history/clear", protected(server.ClearHistoryHandler))

	port := config.Port
	fmt.Printf("Vastra Studio backend starting on port %s...\n", port)
	if err := http.ListenAndServe(":"+port, utils.LatencyMiddleware(http.DefaultServeMux)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
