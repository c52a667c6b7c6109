package main

import (
	"net/http"
	"time"

	"github.com/questlane/backend/internal/gateway"
	"github.com/questlane/backend/pkg/xcontext"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startGateway(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.ctx = xcontext.WithHTTPClient(s.ctx, &http.Client{Timeout: 5 * time.Second})

	gw, err := gateway.New(s.ctx)
	if err != nil {
		return err
	}

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(gw)

	return s.startServer(s.configs.GatewayServer, handler)
}
