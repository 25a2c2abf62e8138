package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/GregMSThompson/retail-backend/internal/bootstrap"
	"github.com/GregMSThompson/retail-backend/internal/config"
	"github.com/GregMSThompson/retail-backend/internal/handlers"
	"github.com/GregMSThompson/retail-backend/internal/middleware"
	"github.com/GregMSThompson/retail-backend/internal/response"
	"github.com/GregMSThompson/retail-backend/internal/router"
	"github.com/GregMSThompson/retail-backend/internal/services"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// services
	lserv := services.NewLayoutService(bs.WidgetClient, bs.SurveyClient, bs.SampleClient, bs.CatalogClient)
	sserv := services.NewSurveyService(bs.SurveyClient)
	pserv := services.NewProductService(bs.CatalogClient)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Auth = middleware.NewMiddleware(cfg.JWTSecret)
	deps.LayoutSvc = lserv
	deps.SurveySvc = sserv
	deps.ProductSvc = pserv

	// router
	r := router.NewRouter(deps)
	bs.Log.Info("gateway listening", "port", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
