package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/currency"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/account"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/preference"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/rates"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/status"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/summary"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/swap"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/notify"
	"github.com/carson-networks/ledger-server/internal/service"
)

// userHeader carries the authenticated user id resolved by the fronting
// proxy. Requests without it fail with 401 at the service layer.
const userHeader = "X-User-ID"

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Bus     *notify.Bus
	Rates   *currency.Table
}

// identityMiddleware binds the request's user id to the context. It never
// rejects by itself; operations that need an identity fail downstream.
func identityMiddleware(ctx huma.Context, next func(huma.Context)) {
	if uid := ctx.Header(userHeader); uid != "" {
		ctx = huma.WithContext(ctx, identity.WithUser(ctx.Context(), identity.UserID(uid)))
	}
	next(ctx)
}

// loggingMiddleware gives each request its own LogData and emits the
// collected fields as one entry when the operation completes.
func (r *Rest) loggingMiddleware(ctx huma.Context, next func(huma.Context)) {
	logData := logging.NewLogData(r.Logger)
	endTimer := logData.AddTiming("duration")
	ctx = huma.WithContext(ctx, logging.WithLogData(ctx.Context(), logData))

	next(ctx)

	endTimer()
	logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	changeHub := NewChangeHub(r.Logger, r.Bus)
	mux.HandleFunc("/v1/changes", logging.LoggingWrapper("Changes", r.Logger, changeHub.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("Ledger Server", "1.0.0"))
	humaAPI.UseMiddleware(r.loggingMiddleware, identityMiddleware)

	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)
	account.NewCreateAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewUpdateAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewDeleteAccountHandler(r.Service.Account).Register(humaAPI)

	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(humaAPI)

	swap.NewListSwapsHandler(r.Service.Swap).Register(humaAPI)
	swap.NewCreateSwapHandler(r.Service.Swap).Register(humaAPI)
	swap.NewUpdateSwapHandler(r.Service.Swap).Register(humaAPI)
	swap.NewDeleteSwapHandler(r.Service.Swap).Register(humaAPI)

	preference.NewGetPreferencesHandler(r.Service.Preference).Register(humaAPI)
	preference.NewSetPreferencesHandler(r.Service.Preference).Register(humaAPI)

	summary.NewTotalBalanceHandler(r.Service.Summary).Register(humaAPI)
	summary.NewMonthlyHandler(r.Service.Summary).Register(humaAPI)
	summary.NewBreakdownHandler(r.Service.Summary).Register(humaAPI)

	rates.NewSetRatesHandler(r.Rates).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
