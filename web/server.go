package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/crickboost/crickboost"
	"github.com/crickboost/crickboost/middleware"
	"github.com/crickboost/crickboost/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var pageFiles = map[string]string{
	"landing":   "templates/landing.html",
	"login":     "templates/login.html",
	"signup":    "templates/signup.html",
	"dashboard": "templates/dashboard.html",
}

// Server renders the site and owns its HTTP routes.
type Server struct {
	engine   *crickboost.Engine
	sessions *session.Manager
	routes   middleware.RouteSet
	log      *slog.Logger
	pages    map[string]*template.Template
}

// NewServer parses the page templates and returns a ready Server.
func NewServer(engine *crickboost.Engine, sessions *session.Manager, log *slog.Logger) (*Server, error) {
	pages := make(map[string]*template.Template, len(pageFiles))
	for name, file := range pageFiles {
		tmpl, err := template.ParseFS(templatesFS, "templates/base.html", file)
		if err != nil {
			return nil, fmt.Errorf("web: parse %s: %w", file, err)
		}
		pages[name] = tmpl
	}

	return &Server{
		engine:   engine,
		sessions: sessions,
		routes:   middleware.DefaultRouteSet(),
		log:      log,
		pages:    pages,
	}, nil
}

// Handler returns the full site handler with the route guard applied to
// every request.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleLanding)
	mux.HandleFunc("GET /login", s.handleLoginPage)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /signup", s.handleSignupPage)
	mux.HandleFunc("POST /signup", s.handleSignup)
	mux.HandleFunc("GET /dashboard", s.handleDashboard)
	mux.HandleFunc("GET /dashboard/", s.handleDashboard)
	mux.HandleFunc("POST /logout", s.handleLogout)
	mux.Handle("GET /static/", http.FileServerFS(staticFS))

	return middleware.Guard(s.routes)(mux)
}

// authForm is what the login and signup templates render: the sticky field
// values, per-field messages, and the form-level message.
type authForm struct {
	Name    string
	Email   string
	Message string
	Errors  map[string]string
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "landing", nil)
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "login", authForm{})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	in := crickboost.LoginInput{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	user, err := s.engine.Login(r.Context(), in)
	if err != nil {
		form := authForm{Email: in.Email}
		status := http.StatusUnprocessableEntity

		switch {
		case asValidation(err, &form):
		case errors.Is(err, crickboost.ErrInvalidCredentials):
			form.Message = "Invalid email or password."
			s.log.Info("login rejected", "email", in.Email)
		default:
			form.Message = "Something went wrong. Please try again."
			status = http.StatusInternalServerError
			s.log.Error("login failed", "error", err)
		}

		s.render(w, status, "login", form)
		return
	}

	if _, err := s.sessions.Create(r.Context(), w, *user); err != nil {
		s.log.Error("session create failed", "error", err)
		s.render(w, http.StatusInternalServerError, "login", authForm{
			Email:   in.Email,
			Message: "Something went wrong. Please try again.",
		})
		return
	}

	s.log.Info("user logged in", "user_id", user.ID)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleSignupPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "signup", authForm{})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	in := crickboost.SignupInput{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	user, err := s.engine.Signup(r.Context(), in)
	if err != nil {
		form := authForm{Name: in.Name, Email: in.Email}
		status := http.StatusUnprocessableEntity

		switch {
		case asValidation(err, &form):
		case errors.Is(err, crickboost.ErrDuplicateUser):
			form.Message = "User already exists"
			s.log.Info("signup rejected", "email", in.Email, "reason", "duplicate")
		default:
			form.Message = "Something went wrong. Please try again."
			status = http.StatusInternalServerError
			s.log.Error("signup failed", "error", err)
		}

		s.render(w, status, "signup", form)
		return
	}

	if _, err := s.sessions.Create(r.Context(), w, *user); err != nil {
		s.log.Error("session create failed", "error", err)
		s.render(w, http.StatusInternalServerError, "signup", authForm{
			Name:    in.Name,
			Email:   in.Email,
			Message: "Something went wrong. Please try again.",
		})
		return
	}

	s.log.Info("user signed up", "user_id", user.ID)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleDashboard does the full session verification the guard skipped. A
// cookie that made it past the gate but fails to verify lands back on the
// login page, indistinguishable from being logged out.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(r.Context(), r)
	if sess == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	s.render(w, http.StatusOK, "dashboard", sess)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Delete(r.Context(), w, r)
	s.log.Info("user logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) render(w http.ResponseWriter, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.pages[page].ExecuteTemplate(w, "base", data); err != nil {
		s.log.Error("template render failed", "page", page, "error", err)
	}
}

// asValidation copies a *ValidationError into form and reports whether err
// was one.
func asValidation(err error, form *authForm) bool {
	var verr *crickboost.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	form.Message = verr.Message
	form.Errors = verr.Fields
	return true
}
