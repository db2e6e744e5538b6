package api

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"wander/internal/config"
	"wander/internal/credentials"
	"wander/internal/utils/logger"
)

type Server struct {
	echo   *echo.Echo
	config *config.Config
	log    *logger.Logger
}

// Validator adapts go-playground/validator to Echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// renderer serves the server-side HTML pages.
type renderer struct {
	templates *template.Template
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func NewServer(cfg *config.Config, store *credentials.Store) (*Server, error) {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(20))))

	e.Validator = &Validator{validate: validator.New()}

	templates, err := template.ParseGlob(filepath.Join(cfg.Storage.TemplateDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	e.Renderer = &renderer{templates: templates}

	if err := os.MkdirAll(cfg.Storage.StaticDir, 0755); err != nil {
		return nil, fmt.Errorf("create static dir: %w", err)
	}
	e.Static("/static", cfg.Storage.StaticDir)

	s := &Server{
		echo:   e,
		config: cfg,
		log:    logger.New("api"),
	}
	s.registerRoutes(store)

	return s, nil
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.log.Info("Listening on %s", addr)
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
