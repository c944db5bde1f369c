package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/smart-condominium/condo-console/condoapi"
	"github.com/smart-condominium/condo-console/internal/config"
	"github.com/smart-condominium/condo-console/session"
)

// Server is the console's HTTP surface: it renders the screens, applies the
// route guard per navigation and forwards every data operation to the
// backend through the condoapi client. It owns no session state itself; the
// injected session manager does.
type Server struct {
	env      string
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	sessions *session.Manager
	api      *condoapi.Client
	log      zerolog.Logger
}

func New(cfg config.Config, sessions *session.Manager, api *condoapi.Client, logger zerolog.Logger) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		config:   cfg,
		sessions: sessions,
		api:      api,
		log:      logger.With().Str("component", "server").Logger(),
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	fmt.Printf("[%-19s] %s\n", displayMethod, path)
}
