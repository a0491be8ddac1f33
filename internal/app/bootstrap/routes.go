// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	aboutfeature "github.com/harvalefoods/harvalehub/internal/app/features/about"
	adminfeature "github.com/harvalefoods/harvalehub/internal/app/features/admin"
	applicantsapifeature "github.com/harvalefoods/harvalehub/internal/app/features/applicantsapi"
	authapifeature "github.com/harvalefoods/harvalehub/internal/app/features/authapi"
	careersfeature "github.com/harvalefoods/harvalehub/internal/app/features/careers"
	contactfeature "github.com/harvalefoods/harvalehub/internal/app/features/contact"
	errorsfeature "github.com/harvalefoods/harvalehub/internal/app/features/errors"
	healthfeature "github.com/harvalefoods/harvalehub/internal/app/features/health"
	homefeature "github.com/harvalefoods/harvalehub/internal/app/features/home"
	newsfeature "github.com/harvalefoods/harvalehub/internal/app/features/news"
	sustainabilityfeature "github.com/harvalefoods/harvalehub/internal/app/features/sustainability"
	uploadsfeature "github.com/harvalefoods/harvalehub/internal/app/features/uploads"
	"github.com/harvalefoods/harvalehub/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the storage backends bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// HarvaleHub initializes the session store and template engine, applies
// session middleware, and mounts the public site pages, the admin
// dashboard, and the JSON API.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionDomain, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads the admin session into context when
	// present, so auth.Current(r) works in all handlers.
	r.Use(auth.LoadSession)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Uploaded applicant photos (local storage only; S3 refs are absolute URLs)
	uploadsHandler := uploadsfeature.NewHandler(deps.LocalPhotos, logger)
	r.Mount("/uploads", uploadsfeature.Routes(uploadsHandler))

	// Public pages
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	aboutHandler := aboutfeature.NewHandler(logger)
	r.Mount("/about", aboutfeature.Routes(aboutHandler))

	sustainabilityHandler := sustainabilityfeature.NewHandler(logger)
	r.Mount("/sustainability", sustainabilityfeature.Routes(sustainabilityHandler))

	newsHandler := newsfeature.NewHandler(logger)
	r.Mount("/news", newsfeature.Routes(newsHandler))

	contactHandler := contactfeature.NewHandler(logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler))

	// Careers status board reads the same store the API serves.
	careersHandler := careersfeature.NewHandler(deps.Applicants, logger)
	r.Mount("/careers", careersfeature.Routes(careersHandler))

	// Admin dashboard pages
	adminHandler := adminfeature.NewHandler(deps.Applicants, logger)
	r.Mount("/admin", adminfeature.Routes(adminHandler))

	// JSON API
	applicantsHandler := applicantsapifeature.NewHandler(deps.Applicants, deps.Photos, errLog, logger)
	r.Mount("/api/applicants", applicantsapifeature.Routes(applicantsHandler))

	authHandler := authapifeature.NewHandler(deps.Credentials, errLog, logger)
	r.Mount("/api/auth", authapifeature.Routes(authHandler))

	r.NotFound(errorsfeature.RenderNotFound)

	return r, nil
}
