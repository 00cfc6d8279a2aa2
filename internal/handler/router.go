package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"creatoros/internal/domain"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Auth       *AuthHandler
	Usage      *UsageHandler
	Generation *GenerationHandler
	Tips       *TipsHandler
	Dashboard  *DashboardHandler
	Proxy      *ProxyHandler
	Webhook    *WebhookHandler
}

// NewRouter creates a new HTTP router with all routes configured.
// proxyMiddleware guards /api/v1/ai/proxy, which accepts project keys as well
// as user tokens.
func NewRouter(h Handlers, authMiddleware, proxyMiddleware func(http.Handler) http.Handler, allowedOrigins []string, logger domain.Logger) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestLogger(logger))

	// Health check endpoint (no auth required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "creatoros"})
	}).Methods(http.MethodGet)

	// The handler answers non-POST methods itself.
	router.HandleFunc("/webhooks/gumroad", h.Webhook.Gumroad)

	api := router.PathPrefix("/api/v1").Subrouter()

	api.Handle("/ai/proxy", proxyMiddleware(http.HandlerFunc(h.Proxy.Handle))).Methods(http.MethodPost)

	// Protected routes (require authentication)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMiddleware)

	protected.HandleFunc("/auth/validate", h.Auth.ValidateToken).Methods(http.MethodGet)

	protected.HandleFunc("/profile", h.Usage.GetProfile).Methods(http.MethodGet)
	protected.HandleFunc("/usage", h.Usage.GetUsage).Methods(http.MethodGet)
	protected.HandleFunc("/usage/can/{action}", h.Usage.CanPerform).Methods(http.MethodGet)

	protected.HandleFunc("/dm", h.Generation.GenerateDM).Methods(http.MethodPost)
	protected.HandleFunc("/pricing", h.Generation.GeneratePricing).Methods(http.MethodPost)
	protected.HandleFunc("/media-kits", h.Generation.GenerateMediaKit).Methods(http.MethodPost)
	protected.HandleFunc("/media-kits/{id}/pdf", h.Dashboard.ExportMediaKitPDF).Methods(http.MethodGet)
	protected.HandleFunc("/bio/enhance", h.Generation.EnhanceBio).Methods(http.MethodPost)
	protected.HandleFunc("/brand-enhancers", h.Generation.BrandEnhancers).Methods(http.MethodGet)

	protected.HandleFunc("/tips/outreach", h.Tips.OutreachTip).Methods(http.MethodGet)
	protected.HandleFunc("/tips/pricing", h.Tips.PricingTip).Methods(http.MethodGet)

	protected.HandleFunc("/dashboard", h.Dashboard.GetStats).Methods(http.MethodGet)
	protected.HandleFunc("/history/{kind}", h.Dashboard.GetHistory).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"Apikey",
			"X-Client-Info",
			"X-Request-ID",
			"X-Gumroad-Signature",
		},
		ExposedHeaders: []string{
			"Content-Disposition",
			"X-Request-ID",
		},
		AllowCredentials:     true,
		OptionsSuccessStatus: http.StatusOK,
		MaxAge:               300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
