package rest

import (
	"net/http"

	"github.com/heartmarshall/assetledger/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health      *HealthHandler
	Assets      *AssetHandler
	Consumables *ConsumableHandler
	Employees   *EmployeeHandler
	Software    *SoftwareHandler
	Cascades    *CascadeHandler
	Feed        *FeedHandler
}

// Limits wraps the expensive routes. A nil limit leaves the route unwrapped.
type Limits struct {
	Cascade middleware.Middleware
	Import  middleware.Middleware
}

// NewRouter registers every route on a fresh ServeMux.
func NewRouter(h Handlers, limits Limits) *http.ServeMux {
	mux := http.NewServeMux()

	cascade := wrap(limits.Cascade)
	imports := wrap(limits.Import)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /assets", h.Assets.List)
	mux.HandleFunc("POST /assets", h.Assets.Create)
	mux.Handle("POST /assets/import", imports(h.Assets.Import))
	mux.Handle("POST /assets/mass-update", cascade(h.Cascades.MassUpdate))
	mux.HandleFunc("GET /assets/{id}", h.Assets.Get)
	mux.HandleFunc("PATCH /assets/{id}", h.Assets.Update)
	mux.HandleFunc("DELETE /assets/{id}", h.Assets.Delete)
	mux.HandleFunc("POST /assets/{id}/assign", h.Assets.Assign)
	mux.HandleFunc("POST /assets/{id}/unassign", h.Assets.Unassign)
	mux.HandleFunc("POST /assets/{id}/retire", h.Assets.Retire)
	mux.HandleFunc("POST /assets/{id}/reinstate", h.Assets.Reinstate)

	mux.HandleFunc("GET /consumables", h.Consumables.List)
	mux.HandleFunc("POST /consumables", h.Consumables.Create)
	mux.Handle("POST /consumables/import", imports(h.Consumables.Import))
	mux.HandleFunc("GET /consumables/{id}", h.Consumables.Get)
	mux.HandleFunc("DELETE /consumables/{id}", h.Consumables.Delete)
	mux.HandleFunc("POST /consumables/{id}/issues", h.Consumables.Issue)
	mux.HandleFunc("POST /consumables/{id}/issues/{issueID}/revoke", h.Consumables.Revoke)
	mux.HandleFunc("POST /consumables/{id}/restock", h.Consumables.Restock)

	mux.HandleFunc("GET /employees", h.Employees.List)
	mux.HandleFunc("POST /employees", h.Employees.Create)
	mux.Handle("POST /employees/import", imports(h.Employees.Import))
	mux.Handle("POST /employees/bulk-delete", cascade(h.Employees.BulkDelete))
	mux.HandleFunc("GET /employees/{id}", h.Employees.Get)
	mux.Handle("DELETE /employees/{id}", cascade(h.Employees.Delete))
	mux.Handle("POST /employees/{id}/exit", cascade(h.Employees.Exit))
	mux.HandleFunc("POST /employees/{id}/comments", h.Employees.Comment)
	mux.HandleFunc("GET /employees/{id}/software", h.Employees.Software)

	mux.HandleFunc("GET /software", h.Software.List)
	mux.HandleFunc("POST /software", h.Software.Create)
	mux.Handle("POST /software/import", imports(h.Software.Import))
	mux.HandleFunc("GET /software/{id}", h.Software.Get)
	mux.HandleFunc("DELETE /software/{id}", h.Software.Delete)
	mux.HandleFunc("PUT /software/{id}/seats/{employeeID}", h.Software.AssignSeat)
	mux.HandleFunc("DELETE /software/{id}/seats/{employeeID}", h.Software.ReleaseSeat)

	mux.Handle("POST /cascades/{id}/resume", cascade(h.Cascades.Resume))

	mux.HandleFunc("GET /feed/recent", h.Feed.Recent)
	mux.HandleFunc("GET /feed/summary", h.Feed.Summary)

	return mux
}

func wrap(mw middleware.Middleware) func(http.HandlerFunc) http.Handler {
	return func(f http.HandlerFunc) http.Handler {
		return middleware.Chain(mw)(f)
	}
}
