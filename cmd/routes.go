package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders)

	mux := pat.New()

	// Bankslips
	mux.Post("/rest/bankslips/:id/payments", standardMiddleware.ThenFunc(app.bankslipHandler.PayBankslip))
	mux.Get("/rest/bankslips/:id", standardMiddleware.ThenFunc(app.bankslipHandler.GetBankslipByID))
	mux.Del("/rest/bankslips/:id", standardMiddleware.ThenFunc(app.bankslipHandler.CancelBankslip))
	mux.Post("/rest/bankslips", standardMiddleware.ThenFunc(app.bankslipHandler.CreateBankslip))
	mux.Get("/rest/bankslips", standardMiddleware.ThenFunc(app.bankslipHandler.GetBankslips))

	return mux
}
