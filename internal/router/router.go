package router

import (
	"net/http"

	_ "petstore/docs"
	mem "petstore/internal/adapters/storage/memory"
	"petstore/internal/domain/pets"
	"petstore/internal/middleware"
	"petstore/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene nil, store en memoria con el seed.
	// Los tests pasan su propio repo para aislar estado.
	Repo pets.Repository

	Logger logger.Logger // puede ser nil
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	repo := opts.Repo
	if repo == nil {
		repo = mem.NewPetRepo(pets.SeedPets()...)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log.With(map[string]any{"component": "http"})))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	petsSvc := pets.NewService(repo, log)
	pets.RegisterRoutes(r, petsSvc, log)

	return r
}
