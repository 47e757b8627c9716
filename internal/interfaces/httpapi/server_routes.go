package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerGameRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/games", handler.ListGames)
	mux.HandleFunc("GET /v1/games/new", handler.NewGameForm)
	mux.HandleFunc("GET /v1/games/{gameID}", handler.GetGame)
	// Form submission: creates without an id field, replaces the stored game with one.
	mux.HandleFunc("POST /v1/games", handler.SubmitGame)
	mux.HandleFunc("PATCH /v1/games/{gameID}", handler.PatchGame)
}
