package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uni-deadline-tracker/internal/export"
	"uni-deadline-tracker/internal/extract"
	deliveryHTTP "uni-deadline-tracker/internal/extract/delivery/http"
	"uni-deadline-tracker/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	apiKey      string

	// Deadline extraction domain
	extractUC extract.UseCase
	exporter  export.UseCase
	outlines  deliveryHTTP.OutlineFetcher
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	APIKey      string

	// Deadline extraction domain
	ExtractUseCase extract.UseCase
	Exporter       export.UseCase
	Outlines       deliveryHTTP.OutlineFetcher
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		apiKey:      cfg.APIKey,
		extractUC:   cfg.ExtractUseCase,
		exporter:    cfg.Exporter,
		outlines:    cfg.Outlines,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.extractUC == nil {
		return errors.New("extract usecase is required")
	}
	return nil
}
