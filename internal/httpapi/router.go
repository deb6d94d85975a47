package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/swaggo/http-swagger"

	"github.com/vntrieu/zhuyin-practice/internal/httpapi/handler"
	"github.com/vntrieu/zhuyin-practice/internal/websocket"
	"github.com/vntrieu/zhuyin-practice/internal/words"

	_ "github.com/vntrieu/zhuyin-practice/docs" // swag-registered docs
)

// Options configures the router. Zero values allow every origin and log to slog.Default().
type Options struct {
	AllowedOrigins []string
	CORSMaxAge     int
	Logger         *slog.Logger
}

// NewRouter builds the root HTTP router over a word service that has already loaded its dataset.
//
// @title            Zhuyin Practice API
// @version          1.0
// @description      Random practice words with zhuyin symbols and keyboard keys.
// @BasePath         /
func NewRouter(svc *words.Service, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         opts.CORSMaxAge,
	}))

	healthHandler := handler.NewHealthHandler(svc, logger)
	r.Get("/health", healthHandler.Health)

	// Swagger UI and spec (from swag comments)
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	wordHandler := handler.NewWordHandler(svc, logger)
	r.Route("/api/words", func(r chi.Router) {
		r.Get("/random", wordHandler.Random)
	})

	// Practice stream: one word per "next" message
	wsHandler := websocket.NewWSHandler(svc, origins, logger)
	r.Get("/ws/words", wsHandler.HandlePractice)

	return r
}
