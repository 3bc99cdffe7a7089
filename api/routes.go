package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/household-server/internal/auth"
	authv1 "github.com/carson-networks/household-server/internal/handlers/v1/auth"
	"github.com/carson-networks/household-server/internal/handlers/v1/category"
	"github.com/carson-networks/household-server/internal/handlers/v1/dashboard"
	"github.com/carson-networks/household-server/internal/handlers/v1/goal"
	"github.com/carson-networks/household-server/internal/handlers/v1/profile"
	"github.com/carson-networks/household-server/internal/handlers/v1/status"
	"github.com/carson-networks/household-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/service"
)

const shutdownTimeout = 15 * time.Second

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Database Pinger
	Service  *service.Service
	Tokens   auth.TokenParser
}

// Router mounts /status and every v1 operation on a chi router. The OpenAPI
// document is served at /openapi.json and the docs at /docs.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	statusHandler := status.NewHandler(r.Database)
	router.Get("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	config := huma.DefaultConfig("Household Server", "1.0.0")
	if config.Components.SecuritySchemes == nil {
		config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{}
	}
	config.Components.SecuritySchemes[auth.SecurityScheme] = &huma.SecurityScheme{
		Type:         "http",
		Scheme:       "bearer",
		BearerFormat: "JWT",
	}
	api := humachi.New(router, config)
	api.UseMiddleware(
		logging.HumaMiddleware(r.Logger),
		requestIDMiddleware,
		auth.Middleware(api, r.Tokens),
	)

	r.register(api)
	return router
}

func (r *Rest) register(api huma.API) {
	svc := r.Service

	authv1.NewSignUpHandler(svc.Auth).Register(api)
	authv1.NewSignInHandler(svc.Auth).Register(api)
	authv1.NewSignOutHandler(svc.Auth).Register(api)
	authv1.NewCurrentUserHandler(svc.Auth).Register(api)
	authv1.NewUpdatePasswordHandler(svc.Auth).Register(api)

	transaction.NewCreateTransactionHandler(svc.Transaction).Register(api)
	transaction.NewReplaceTransactionHandler(svc.Transaction).Register(api)
	transaction.NewGetTransactionHandler(svc.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(svc.Transaction).Register(api)
	transaction.NewListTransactionsHandler(svc.Transaction).Register(api)

	category.NewListCategoriesHandler(svc.Category).Register(api)
	category.NewCreateCategoryHandler(svc.Category).Register(api)
	category.NewUpdateCategoryHandler(svc.Category).Register(api)
	category.NewDeleteCategoryHandler(svc.Category).Register(api)

	goal.NewListGoalsHandler(svc.Goal).Register(api)
	goal.NewCreateGoalHandler(svc.Goal).Register(api)
	goal.NewUpdateGoalHandler(svc.Goal).Register(api)
	goal.NewDeleteGoalHandler(svc.Goal).Register(api)

	profile.NewGetMeHandler(svc.Profile).Register(api)
	profile.NewListProfilesHandler(svc.Profile).Register(api)
	profile.NewCreateProfileHandler(svc.Profile).Register(api)
	profile.NewUpdateProfileHandler(svc.Profile).Register(api)
	profile.NewDeleteProfileHandler(svc.Profile).Register(api)

	dashboard.NewGetDashboardHandler(svc.Dashboard).Register(api)
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func requestIDMiddleware(ctx huma.Context, next func(huma.Context)) {
	if id := middleware.GetReqID(ctx.Context()); id != "" {
		logging.GetLogData(ctx.Context()).AddData("requestID", id)
	}
	next(ctx)
}
