package config

import (
	"log/slog"

	controller "github.com/Amey2003/excel-issue-tracker/pkg/controller/http"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr          string
	AllowedOrigin string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("ISSUEDASH_ADDR"),
			Destination: &s.Addr,
		},
		&cli.StringFlag{
			Name:        "allowed-origin",
			Usage:       "Origin of a browser dashboard allowed to call the API (CORS). Empty disables CORS",
			Sources:     cli.EnvVars("ISSUEDASH_ALLOWED_ORIGIN"),
			Destination: &s.AllowedOrigin,
		},
	}
}

// Configure returns the HTTP controller configuration
func (s *Server) Configure() controller.Config {
	return controller.Config{
		Addr:          s.Addr,
		AllowedOrigin: s.AllowedOrigin,
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.String("allowed_origin", s.AllowedOrigin),
	)
}
