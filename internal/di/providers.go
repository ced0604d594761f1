package di

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"MarketScanner/internal/domain/repository"
	"MarketScanner/internal/handler/api"
	"MarketScanner/internal/provider/yahoo"
	"MarketScanner/internal/services/signals"
	"MarketScanner/internal/usecase"
	"MarketScanner/pkg/config"
	xhttp "MarketScanner/pkg/http"
	applogger "MarketScanner/pkg/logger"
	"MarketScanner/pkg/metrics"
	"MarketScanner/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	})
}

// ProvideRegistry creates the Prometheus registry shared by all collectors.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(reg *prometheus.Registry) repository.Metrics {
	return metrics.New(reg)
}

// ProvidePriceProvider creates the Yahoo Finance daily-close client.
func ProvidePriceProvider(cfg *config.Config) repository.PriceProvider {
	return yahoo.New(yahoo.Config{
		BaseURL:   cfg.Provider.BaseURL,
		UserAgent: cfg.Provider.UserAgent,
		Timeout:   cfg.Provider.Timeout,
	})
}

// ProvideMarketScanner creates the scan use case.
func ProvideMarketScanner(
	p repository.PriceProvider,
	engine *signals.Engine,
	logger *applogger.Logger,
	m repository.Metrics,
	cfg *config.Config,
) *usecase.MarketScanner {
	return usecase.NewMarketScanner(p, engine, logger.With(applogger.String("component", "scanner")), m, cfg.Provider.LookbackDays)
}

// ProvideScannerHandler creates the Echo handler for the scan endpoint.
func ProvideScannerHandler(logger *applogger.Logger, scanner *usecase.MarketScanner, cfg *config.Config) *api.ScannerEchoHandler {
	return api.NewScannerEchoHandler(logger, scanner, cfg.Server.Path)
}

// ProvideHTTPServer creates the Echo server with the scan routes registered.
func ProvideHTTPServer(cfg *config.Config, h *api.ScannerEchoHandler, logger *applogger.Logger, reg *prometheus.Registry) *xhttp.Server {
	return xhttp.NewServer(h, logger,
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithMetrics(cfg.Metrics.Enabled, cfg.Metrics.Path, reg),
	)
}

// ProvideApp creates the application.
func ProvideApp(cfg *config.Config, srv *xhttp.Server, logger *applogger.Logger) *server.App {
	return server.New(cfg, srv, logger)
}
