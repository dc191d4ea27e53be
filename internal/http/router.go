package http

import (
	"net/http"

	"builderboard/internal/application"
	"builderboard/internal/auth"
	"builderboard/internal/config"
	"builderboard/internal/http/handler"
	mw "builderboard/internal/http/middleware"
	"builderboard/internal/job"
	"builderboard/internal/listing"
	"builderboard/internal/profile"
	"builderboard/internal/shortlist"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

type Deps struct {
	DB        *gorm.DB
	JWT       *auth.JWT
	Workflow  *application.Service
	Listings  *listing.Service
	Jobs      *job.Service
	Profiles  *profile.Service
	Bookmarks *shortlist.Service
}

func NewRouter(cfg config.Config, d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{DB: d.DB, JWT: d.JWT}
	r.Post("/auth/register", ah.Register)
	r.Post("/auth/login", ah.Login)

	me := &handler.MeHandler{DB: d.DB, Profiles: d.Profiles}
	ph := &handler.ProfileHandler{Profiles: d.Profiles}
	r.With(auth.RequireAuth(d.JWT)).Get("/me", me.Me)
	r.With(auth.RequireAuth(d.JWT)).Put("/profile", ph.Put)

	jh := &handler.JobHandler{Jobs: d.Jobs, Profiles: d.Profiles}
	jr := &handler.JobReadHandler{Listings: d.Listings, Profiles: d.Profiles}
	sh := &handler.ShortlistHandler{Shortlists: d.Bookmarks, Jobs: d.Jobs, Profiles: d.Profiles}
	apph := &handler.ApplicationHandler{Svc: d.Workflow, DB: d.DB, JWT: d.JWT}

	r.Route("/jobs", func(r chi.Router) {
		// Recommended is the public browse surface.
		r.Get("/recommended", jr.Recommended)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(d.JWT))

			r.Get("/", jr.List)
			r.Post("/", jh.Create)
			r.Get("/shortlisted", jr.Shortlisted)
			r.Get("/connections/sent", jr.Sent)

			r.Get("/{jobId}", jh.Get)
			r.Patch("/{jobId}", jh.Update)

			r.Get("/{jobId}/shortlist", sh.Get)
			r.Post("/{jobId}/shortlist", sh.Add)
			r.Delete("/{jobId}/shortlist", sh.Remove)

			r.Post("/{jobId}/apply", apph.Apply)
		})
	})

	// Decision endpoints do their own auth: emailed token or owner session.
	r.Post("/applications/{applicationId}/accept", apph.Accept)
	r.Post("/applications/{applicationId}/reject", apph.Reject)
	// Emailed links are plain GETs from mail clients; same flow.
	r.Get("/applications/{applicationId}/accept", apph.Accept)
	r.Get("/applications/{applicationId}/reject", apph.Reject)

	r.With(auth.RequireAuth(d.JWT)).Get("/projects/my-projects", jr.MyProjects)

	return r
}
