package handlers

import (
	"log/slog"

	"github.com/GregMSThompson/retail-backend/internal/middleware"
	"github.com/GregMSThompson/retail-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Auth            *middleware.Middleware
	LayoutSvc       layoutService
	SurveySvc       surveyService
	ProductSvc      productService
}
