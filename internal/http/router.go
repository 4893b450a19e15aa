package http

import (
	"net/http"
	"time"

	"github.com/nalin-pixel/selfmastery-api/internal/schema"
	"github.com/nalin-pixel/selfmastery-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type API struct {
	Service         *service.Service
	Schemas         *schema.Registry
	Log             *zap.Logger
	Origins         []string
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(a.loggingMiddleware)
	r.Use(a.corsMiddleware)

	r.Get("/", a.handleRoot)
	r.Get("/schema", a.handleSchema)
	r.Get("/challenges", a.handleChallenges)
	r.Get("/test", a.handleTest)
	r.Post("/coach/plan", a.handleCoachPlan)

	for _, route := range recordRoutes {
		r.Post(route.Path, a.handleCreate(route.Kind))
		r.Get(route.Path, a.handleList(route.Kind))
	}

	return r
}
