package handler

import (
	"net/http"

	"stravigo-admin/internal/logger"
	mw "stravigo-admin/internal/middleware"
	"stravigo-admin/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates and configures a new chi router. Everything under /api
// sits behind the session gate; only the auth endpoints and the health probe
// are reachable without it.
func NewRouter(
	log logger.Logger,
	sessions session.Manager,
	auth *AuthHandler,
	dashboard *DashboardHandler,
	pages *PageHandler,
	caseStudies *CaseStudyHandler,
	insights *InsightHandler,
	leads *LeadHandler,
	testimonials *TestimonialHandler,
	careers *CareersHandler,
	uploads *AssetHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// A good base middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(sessions.LoadAndSave)

	wrap := mw.Error(log)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "Not found"}`))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Authentication routes
	r.Method(http.MethodPost, "/auth/login", wrap(auth.handleLogin))
	r.Method(http.MethodPost, "/auth/logout", wrap(auth.handleLogout))
	r.Method(http.MethodGet, "/auth/session", wrap(auth.handleSession))

	// Protected routes
	r.Route("/api", func(r chi.Router) {
		r.Use(mw.RequireAuth(sessions))

		r.Method(http.MethodGet, "/dashboard", wrap(dashboard.stats))

		r.Method(http.MethodGet, "/pages", wrap(pages.list))
		r.Method(http.MethodPost, "/pages/initialize", wrap(pages.initialize))
		r.Method(http.MethodPut, "/pages/{id}/hero", wrap(pages.updateHero))

		r.Method(http.MethodGet, "/case-studies", wrap(caseStudies.list))
		r.Method(http.MethodPost, "/case-studies", wrap(caseStudies.create))
		r.Method(http.MethodGet, "/case-studies/{id}", wrap(caseStudies.get))
		r.Method(http.MethodPut, "/case-studies/{id}", wrap(caseStudies.update))
		r.Method(http.MethodDelete, "/case-studies/{id}", wrap(caseStudies.delete))

		r.Method(http.MethodGet, "/insights", wrap(insights.list))
		r.Method(http.MethodPost, "/insights", wrap(insights.create))
		r.Method(http.MethodPost, "/insights/preview", wrap(insights.preview))
		r.Method(http.MethodGet, "/insights/{id}", wrap(insights.get))
		r.Method(http.MethodPut, "/insights/{id}", wrap(insights.update))
		r.Method(http.MethodDelete, "/insights/{id}", wrap(insights.delete))

		r.Method(http.MethodGet, "/leads", wrap(leads.list))
		r.Method(http.MethodPatch, "/leads/{id}/status", wrap(leads.updateStatus))
		r.Method(http.MethodDelete, "/leads/{id}", wrap(leads.delete))

		r.Method(http.MethodGet, "/testimonials", wrap(testimonials.list))
		r.Method(http.MethodPost, "/testimonials", wrap(testimonials.create))
		r.Method(http.MethodGet, "/testimonials/{id}", wrap(testimonials.get))
		r.Method(http.MethodPut, "/testimonials/{id}", wrap(testimonials.update))
		r.Method(http.MethodPatch, "/testimonials/{id}/flag", wrap(testimonials.toggleFlag))
		r.Method(http.MethodDelete, "/testimonials/{id}", wrap(testimonials.delete))

		r.Method(http.MethodGet, "/jobs", wrap(careers.listJobs))
		r.Method(http.MethodPost, "/jobs", wrap(careers.createJob))
		r.Method(http.MethodGet, "/jobs/{id}", wrap(careers.getJob))
		r.Method(http.MethodPut, "/jobs/{id}", wrap(careers.updateJob))
		r.Method(http.MethodPatch, "/jobs/{id}/active", wrap(careers.setJobActive))
		r.Method(http.MethodDelete, "/jobs/{id}", wrap(careers.deleteJob))

		r.Method(http.MethodGet, "/applicants", wrap(careers.listApplicants))
		r.Method(http.MethodPatch, "/applicants/{id}/status", wrap(careers.updateApplicantStatus))
		r.Method(http.MethodDelete, "/applicants/{id}", wrap(careers.deleteApplicant))

		r.Method(http.MethodPost, "/assets", wrap(uploads.upload))
	})

	return r
}
