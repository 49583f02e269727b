package httpx

import (
	"log/slog"
	"net/http"

	"github.com/chorebank/chorebank/internal/domain/changefeed"
	"github.com/chorebank/chorebank/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth        *service.AuthService
	Jobs        *service.JobService
	UserJobs    *service.UserJobService
	Punishments *service.PunishmentService
	Profiles    *service.ProfileService
	Statistics  *service.StatisticsService
	Notifier    changefeed.Notifier

	CookieDomain string
	// ChangeWaitSeconds caps a single long-poll request.
	ChangeWaitSeconds int
	MaxUploadBytes    int64
	Logger            *slog.Logger
}

// NewRouter creates and configures the API router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	requireAuth := RequireAuth(services.Auth)
	requireAdmin := RequireAdmin(services.Auth)

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	mux.Handle("POST /api/auth/signup", http.HandlerFunc(authHandlers.Signup))
	mux.Handle("POST /api/auth/login", http.HandlerFunc(authHandlers.Login))
	mux.Handle("POST /api/auth/logout", http.HandlerFunc(authHandlers.Logout))
	mux.Handle("GET /api/auth/session", http.HandlerFunc(authHandlers.Session))
	if services.Auth.SSOEnabled() {
		mux.Handle("GET /api/auth/sso", http.HandlerFunc(authHandlers.BeginSSO))
		mux.Handle("GET /api/auth/sso/callback", http.HandlerFunc(authHandlers.SSOCallback))
	}

	jobHandlers := &JobHandlers{Svc: services.Jobs, MaxUploadBytes: services.MaxUploadBytes}
	mux.Handle("GET /api/jobs", requireAuth(http.HandlerFunc(jobHandlers.ListJobs)))
	mux.Handle("GET /api/jobs/{id}", requireAuth(http.HandlerFunc(jobHandlers.GetJob)))
	mux.Handle("POST /api/jobs", requireAdmin(http.HandlerFunc(jobHandlers.CreateJob)))
	mux.Handle("PATCH /api/jobs/{id}", requireAdmin(http.HandlerFunc(jobHandlers.UpdateJob)))
	mux.Handle("DELETE /api/jobs/{id}", requireAdmin(http.HandlerFunc(jobHandlers.DeleteJob)))
	mux.Handle("PUT /api/jobs/{id}/image", requireAdmin(http.HandlerFunc(jobHandlers.UploadJobImage)))
	mux.Handle("GET /api/jobs/{id}/image", requireAuth(http.HandlerFunc(jobHandlers.FetchJobImage)))

	userJobHandlers := &UserJobHandlers{Svc: services.UserJobs, MaxUploadBytes: services.MaxUploadBytes}
	mux.Handle("POST /api/user-jobs", requireAdmin(http.HandlerFunc(userJobHandlers.AssignJob)))
	mux.Handle("GET /api/user-jobs", requireAuth(http.HandlerFunc(userJobHandlers.ListMine)))
	mux.Handle("GET /api/user-jobs/solved", requireAdmin(http.HandlerFunc(userJobHandlers.ListSolved)))
	mux.Handle("GET /api/user-jobs/approved", requireAuth(http.HandlerFunc(userJobHandlers.ListApproved)))
	mux.Handle("GET /api/users/{id}/user-jobs", requireAdmin(http.HandlerFunc(userJobHandlers.ListByUser)))
	mux.Handle("POST /api/user-jobs/{id}/solve", requireAuth(http.HandlerFunc(userJobHandlers.SolveJob)))
	mux.Handle("PUT /api/user-jobs/{id}/solve-image", requireAuth(http.HandlerFunc(userJobHandlers.SolveJobWithImage)))
	mux.Handle("POST /api/user-jobs/{id}/approve", requireAdmin(http.HandlerFunc(userJobHandlers.ApproveJob)))
	mux.Handle("DELETE /api/user-jobs/{id}", requireAuth(http.HandlerFunc(userJobHandlers.DeleteUserJob)))

	punishmentHandlers := &PunishmentHandlers{Svc: services.Punishments}
	mux.Handle("POST /api/punishments", requireAdmin(http.HandlerFunc(punishmentHandlers.CreatePunishment)))
	mux.Handle("GET /api/punishments", requireAuth(http.HandlerFunc(punishmentHandlers.ListPunishments)))
	mux.Handle("DELETE /api/punishments/{id}", requireAdmin(http.HandlerFunc(punishmentHandlers.DeletePunishment)))

	profileHandlers := &ProfileHandlers{Svc: services.Profiles}
	mux.Handle("GET /api/profiles", requireAuth(http.HandlerFunc(profileHandlers.ListProfiles)))
	mux.Handle("GET /api/profiles/me", requireAuth(http.HandlerFunc(profileHandlers.Me)))
	mux.Handle("GET /api/profiles/{id}", requireAuth(http.HandlerFunc(profileHandlers.GetProfile)))
	mux.Handle("PUT /api/profiles/{id}/role", requireAdmin(http.HandlerFunc(profileHandlers.SetRole)))
	mux.Handle("DELETE /api/profiles/{id}", requireAdmin(http.HandlerFunc(profileHandlers.DeleteProfile)))

	statisticsHandlers := &StatisticsHandlers{Svc: services.Statistics}
	mux.Handle("GET /api/statistics", requireAuth(http.HandlerFunc(statisticsHandlers.Dashboard)))

	if services.Notifier != nil {
		changeHandlers := &ChangeHandlers{
			Notifier:    services.Notifier,
			WaitSeconds: services.ChangeWaitSeconds,
			Logger:      services.Logger,
		}
		mux.Handle("GET /api/changes/{table}", requireAuth(http.HandlerFunc(changeHandlers.LongPoll)))
		mux.Handle("GET /api/realtime", requireAuth(http.HandlerFunc(changeHandlers.Realtime)))
	}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}
