package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	catalogclient "github.com/GregMSThompson/retail-backend/internal/client/catalog"
	sampleclient "github.com/GregMSThompson/retail-backend/internal/client/sample"
	surveyclient "github.com/GregMSThompson/retail-backend/internal/client/survey"
	widgetclient "github.com/GregMSThompson/retail-backend/internal/client/widget"
	"github.com/GregMSThompson/retail-backend/internal/config"
	"github.com/GregMSThompson/retail-backend/pkg/logger"
)

type Bootstrap struct {
	Log           *slog.Logger
	HTTPClient    *http.Client
	WidgetClient  *widgetclient.Adapter
	SurveyClient  *surveyclient.Adapter
	SampleClient  *sampleclient.Adapter
	CatalogClient *catalogclient.Adapter
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	bs := new(Bootstrap)
	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)

	if cfg.JWTSecret == "" {
		return bs, fmt.Errorf("JWTSECRET is required")
	}
	for name, u := range map[string]string{
		"WIDGETSERVICEURL":  cfg.WidgetServiceURL,
		"SURVEYSERVICEURL":  cfg.SurveyServiceURL,
		"SAMPLESERVICEURL":  cfg.SampleServiceURL,
		"CATALOGSERVICEURL": cfg.CatalogServiceURL,
	} {
		if u == "" {
			return bs, fmt.Errorf("%s is required", name)
		}
	}

	bs.HTTPClient = &http.Client{Timeout: cfg.HTTPTimeout}
	bs.WidgetClient = widgetclient.NewAdapter(cfg.WidgetServiceURL, bs.HTTPClient)
	bs.SurveyClient = surveyclient.NewAdapter(cfg.SurveyServiceURL, bs.HTTPClient)
	bs.SampleClient = sampleclient.NewAdapter(cfg.SampleServiceURL, bs.HTTPClient)
	bs.CatalogClient = catalogclient.NewAdapter(cfg.CatalogServiceURL, bs.HTTPClient)

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.HTTPClient != nil {
		bs.HTTPClient.CloseIdleConnections()
	}
}
