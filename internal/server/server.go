package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/namuapp/receitas-api/config"
	"github.com/namuapp/receitas-api/internal/api"
	"github.com/namuapp/receitas-api/internal/catalog"
	"github.com/namuapp/receitas-api/internal/observability"
	"github.com/namuapp/receitas-api/internal/router"
	"github.com/namuapp/receitas-api/internal/service"
)

// Server represents the HTTP server.
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// New wires services, handlers and routes over the given catalog and
// returns a server ready to Start.
func New(cfg *config.Config, cat *catalog.Catalog) *Server {
	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	metrics.CatalogSize.Set(float64(cat.Len()))

	recipes := service.NewRecipeService(cat)
	contexts := service.NewContextService()

	recipeHandler := api.NewRecipeHandler(recipes)
	contextHandler := api.NewContextHandler(contexts, metrics)

	r := router.SetupRouter(recipeHandler, contextHandler, metrics)

	return &Server{
		router: r,
		cfg:    cfg,
		http: &http.Server{
			Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler: r,
		},
	}
}

// Start serves HTTP until Shutdown is called. A clean shutdown is not
// reported as an error.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// LocalIP returns the machine's LAN address for the startup banner. The UDP
// dial never sends a packet; it only asks the kernel which interface would
// route out. Falls back to localhost when there is no route.
func LocalIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "localhost"
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "localhost"
	}
	return addr.IP.String()
}
