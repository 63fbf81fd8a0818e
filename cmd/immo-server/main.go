package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phuslu/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rexologue/immo-engine/internal/config"
	"github.com/rexologue/immo-engine/internal/tools"
	"github.com/rexologue/immo-engine/internal/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := log.Logger{
		Level:      log.ParseLevel(cfg.LogLevel),
		TimeFormat: time.RFC3339,
		Writer:     &log.ConsoleWriter{},
	}

	if err := tracing.InitTracing(cfg.OTELServiceName); err != nil {
		logger.Fatal().Err(err).Msg("failed to init tracing")
	}

	handlers := map[string]tools.ToolHandler{
		"purchase_closing_costs":     tools.PurchaseClosingCostsHandler(cfg, tracing.Tracer),
		"loan_annuity_summary":       tools.LoanAnnuitySummaryHandler(cfg, tracing.Tracer),
		"loan_amortization_schedule": tools.LoanAmortizationScheduleHandler(cfg, tracing.Tracer),
		"tax_deductibility":          tools.TaxDeductibilityHandler(cfg, tracing.Tracer),
		"cash_flow":                  tools.CashFlowHandler(cfg, tracing.Tracer),
		"return_ratios":              tools.ReturnRatiosHandler(cfg, tracing.Tracer),
		"wealth_projection":          tools.WealthProjectionHandler(cfg, tracing.Tracer),
		"effective_after_tax_yield":  tools.EffectiveAfterTaxYieldHandler(cfg, tracing.Tracer),
		"property_analysis":          tools.PropertyAnalysisHandler(cfg, tracing.Tracer),
	}

	limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer limiter.Stop()

	mux := http.NewServeMux()
	for name, handler := range handlers {
		mux.Handle("/tools/"+name, rateLimitMiddleware(limiter, toolEndpoint(&logger, name, handler)))
	}
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Int("port", cfg.Port).Msg("starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Fatal().Err(err).Msg("server failed")
	case <-quit:
		logger.Info().Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}

	logger.Info().Msg("server exited")
}

// toolEndpoint maps a JSON POST body onto a tool handler's parameter map.
func toolEndpoint(logger *log.Logger, name string, handler tools.ToolHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		defer r.Body.Close()

		var params map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}

		result, err := handler(r.Context(), params)
		if err != nil {
			logger.Warn().Err(err).Str("tool", name).Msg("tool call failed")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.Error().Err(err).Str("tool", name).Msg("failed to encode response")
		}
	})
}
