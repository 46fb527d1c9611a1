package router

import (
	"net/http"

	"animals-api/internal/domain/animals"
	"animals-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Options lleva las dependencias del router. El repo se inyecta siempre
// explícito: acá no se decide storage ni se leen variables de entorno.
type Options struct {
	Animals animals.Repository
	Logger  zerolog.Logger
}

// NewRouter arma el router HTTP: middleware base, health, el recurso
// /animals y la documentación generada (/swagger/index.html, /swagger/doc.json).
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.Recover(opts.Logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	svc := animals.NewService(opts.Animals)
	animals.RegisterRoutes(r, svc)

	// UI interactiva; el JSON machine-readable queda en /swagger/doc.json
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
