package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"memberorg/internal/delivery/http/controllers"
	"memberorg/internal/delivery/http/middleware"
	"memberorg/internal/domain"
)

// RouterDeps bundles everything NewRouter needs to wire the routes.
type RouterDeps struct {
	Logger *slog.Logger

	Submissions *controllers.SubmissionController
	Auth        *controllers.AuthController
	Review      *controllers.ReviewController
	Settings    *controllers.SettingsController
	Users       *controllers.UserController
	Content     *controllers.ContentController

	TokenVerifier domain.TokenVerifier
	UserRepo      domain.UserRepository
}

// NewRouter initializes the HTTP router with all application routes.
// Admin routes are wrapped with the RequireAdmin middleware.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()
	admin := middleware.RequireAdmin(deps.TokenVerifier, deps.UserRepo, deps.Logger)

	// Public submission forms
	mux.HandleFunc("POST /submissions/conference", deps.Submissions.SubmitConference)
	mux.HandleFunc("POST /submissions/tech-conference", deps.Submissions.SubmitTechConference)
	mux.HandleFunc("POST /submissions/nominations", deps.Submissions.SubmitNomination)
	mux.HandleFunc("POST /submissions/membership", deps.Submissions.SubmitMembership)

	// Public reads
	mux.HandleFunc("GET /settings/{event_type}/active", deps.Settings.GetActiveSettings)
	mux.HandleFunc("GET /content", deps.Content.ListContent)
	mux.HandleFunc("GET /resources", deps.Content.ListResources)
	mux.HandleFunc("GET /board", deps.Content.ListBoardMembers)

	// Auth
	mux.HandleFunc("POST /auth/login", deps.Auth.Login)

	// Admin: submissions review
	mux.HandleFunc("GET /admin/registrations/{event_type}", admin(deps.Review.ListRegistrations))
	mux.HandleFunc("GET /admin/nominations", admin(deps.Review.ListNominations))
	mux.HandleFunc("PATCH /admin/nominations/{id}/status", admin(deps.Review.UpdateNominationStatus))
	mux.HandleFunc("GET /admin/memberships", admin(deps.Review.ListMemberships))
	mux.HandleFunc("PATCH /admin/memberships/{id}/status", admin(deps.Review.UpdateMembershipStatus))

	// Admin: archives
	mux.HandleFunc("GET /admin/archives/{event_type}", admin(deps.Review.ListArchiveBatches))
	mux.HandleFunc("GET /admin/archives/batch/{archive_id}", admin(deps.Review.GetArchiveSnapshot))

	// Admin: settings and rollover
	mux.HandleFunc("GET /admin/settings/{event_type}", admin(deps.Settings.ListSettings))
	mux.HandleFunc("POST /admin/settings/{event_type}", admin(deps.Settings.SaveSettings))
	mux.HandleFunc("DELETE /admin/settings/{id}", admin(deps.Settings.DeleteSettings))
	mux.HandleFunc("POST /admin/rollover/{event_type}", admin(deps.Settings.RunRollover))

	// Admin: users
	mux.HandleFunc("GET /admin/users", admin(deps.Users.ListUsers))
	mux.HandleFunc("POST /admin/users", admin(deps.Users.CreateUser))
	mux.HandleFunc("DELETE /admin/users/{id}", admin(deps.Users.DeleteUser))

	// Admin: content
	mux.HandleFunc("POST /admin/content", admin(deps.Content.SaveContent))
	mux.HandleFunc("DELETE /admin/content/{id}", admin(deps.Content.DeleteContent))
	mux.HandleFunc("POST /admin/resources", admin(deps.Content.SaveResource))
	mux.HandleFunc("DELETE /admin/resources/{id}", admin(deps.Content.DeleteResource))
	mux.HandleFunc("PATCH /admin/resources/reorder", admin(deps.Content.ReorderResources))
	mux.HandleFunc("POST /admin/resources/upload-url", admin(deps.Content.SignResourceUpload))
	mux.HandleFunc("POST /admin/board", admin(deps.Content.SaveBoardMember))
	mux.HandleFunc("DELETE /admin/board/{id}", admin(deps.Content.DeleteBoardMember))
	mux.HandleFunc("PATCH /admin/board/reorder", admin(deps.Content.ReorderBoardMembers))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
