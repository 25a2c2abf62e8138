package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/retail-backend/internal/handlers"
	"github.com/GregMSThompson/retail-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)

	lh := handlers.NewLayoutHandlers(deps)
	sh := handlers.NewSurveyHandlers(deps)
	ph := handlers.NewProductHandlers(deps)

	r.Mount("/layout", lh.LayoutRoutes(deps.Auth))
	r.Mount("/surveys", sh.SurveyRoutes(deps.Auth))
	r.Mount("/products", ph.ProductRoutes())
	return r
}
