package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	deliveryHTTP "uni-deadline-tracker/internal/extract/delivery/http"
	"uni-deadline-tracker/internal/middleware"
)

// setupDeadlineDomain wires the deadline extraction domain and registers its
// routes. The use case, exporter and outline fetcher are constructed in main
// and passed through Config; delivery is built here.
func (srv HTTPServer) setupDeadlineDomain(ctx context.Context, api *gin.RouterGroup) error {
	mw := middleware.New(srv.l, srv.apiKey)
	h := deliveryHTTP.New(srv.l, srv.extractUC, srv.exporter, srv.outlines)
	deliveryHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Deadline domain registered under /api/v1")
	return nil
}
