package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsHandler http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}
}

func registerQueryRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/years", handler.ListYears)
	mux.HandleFunc("GET /v1/tables/{kind}", handler.GetTable)
	mux.HandleFunc("GET /v1/tables/{kind}/winners", handler.GetWinners)
	mux.HandleFunc("GET /v1/players/{playerID}/records/{year}", handler.GetPlayerRecord)
	mux.HandleFunc("GET /v1/recompute/progress", handler.GetRecomputeProgress)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/recompute-all", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RecomputeAll)))
	mux.Handle("POST /v1/internal/jobs/recompute-gameday/{gameDayID}", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RecomputeGameDay)))
}
