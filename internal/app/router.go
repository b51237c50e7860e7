package app

import (
	"net/http"

	"github.com/heartmarshall/rotection-backend/internal/transport/middleware"
	"github.com/heartmarshall/rotection-backend/internal/transport/rest"
)

type handlers struct {
	health     *rest.HealthHandler
	auth       *rest.AuthHandler
	account    *rest.AccountHandler
	game       *rest.GameHandler
	submission *rest.SubmissionHandler
	admin      *rest.AdminHandler
	metrics    http.Handler
}

type limits struct {
	auth   middleware.Middleware
	writes middleware.Middleware
}

// newMux registers every route. Write routes are rate limited per IP.
func newMux(h handlers, l limits) *http.ServeMux {
	mux := http.NewServeMux()

	authLimited := func(fn http.HandlerFunc) http.Handler { return l.auth(fn) }
	writeLimited := func(fn http.HandlerFunc) http.Handler { return l.writes(fn) }

	mux.HandleFunc("GET /live", h.health.Live)
	mux.HandleFunc("GET /ready", h.health.Ready)
	mux.HandleFunc("GET /health", h.health.Health)
	mux.Handle("GET /metrics", h.metrics)

	mux.Handle("POST /auth/login", authLimited(h.auth.Login))
	mux.Handle("POST /auth/refresh", authLimited(h.auth.Refresh))
	mux.HandleFunc("POST /auth/logout", h.auth.Logout)

	mux.HandleFunc("GET /me", h.account.Me)
	mux.Handle("PUT /me/username", writeLimited(h.account.SetUsername))
	mux.HandleFunc("GET /me/submissions", h.submission.Mine)

	mux.Handle("POST /link/roblox/start", authLimited(h.account.StartRobloxOAuth))
	mux.Handle("GET /link/roblox/callback", authLimited(h.account.RobloxCallback))
	mux.Handle("POST /link/roblox/manual/start", authLimited(h.account.StartManualLink))
	mux.Handle("POST /link/roblox/manual/confirm", authLimited(h.account.ConfirmManualLink))
	mux.HandleFunc("DELETE /link/roblox", h.account.Unlink)

	mux.HandleFunc("GET /games", h.game.List)
	mux.HandleFunc("GET /games/featured", h.game.Featured)
	mux.HandleFunc("GET /games/genres", h.game.Genres)
	mux.HandleFunc("GET /roblox/games/{robloxId}", h.game.GetByRobloxID)
	mux.HandleFunc("GET /games/{id}", h.game.Get)
	mux.HandleFunc("GET /games/{id}/reviews", h.game.Reviews)
	mux.HandleFunc("GET /games/{id}/my-rating", h.game.MyRating)
	mux.Handle("POST /games/{id}/ratings", writeLimited(h.game.SubmitRating))
	mux.Handle("POST /games/{id}/reports", writeLimited(h.game.SubmitReport))
	mux.Handle("POST /reviews/{id}/votes", writeLimited(h.game.Vote))
	mux.HandleFunc("GET /reviews/{id}/my-vote", h.game.MyVote)

	mux.Handle("POST /submissions", writeLimited(h.submission.Submit))
	mux.HandleFunc("GET /catalog/lookup", h.submission.Lookup)

	mux.HandleFunc("GET /admin/submissions", h.admin.Submissions)
	mux.HandleFunc("POST /admin/submissions/{id}/approve", h.admin.Approve)
	mux.HandleFunc("POST /admin/submissions/{id}/reject", h.admin.Reject)
	mux.HandleFunc("GET /admin/reports", h.admin.Reports)
	mux.HandleFunc("POST /admin/reports/{id}/resolve", h.admin.ResolveReport)
	mux.HandleFunc("GET /admin/audit", h.admin.Audit)

	return mux
}
