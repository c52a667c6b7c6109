package main

import (
	"github.com/questlane/backend/internal/middleware"
	"github.com/questlane/backend/pkg/router"
	"github.com/urfave/cli/v2"
)

func (s *srv) startAuth(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()
	s.loadAuthenticator()
	s.loadRepos()
	s.loadDomains()
	s.loadAuthRouter()
	s.startPrometheusServer()

	return s.startServer(s.configs.AuthServer, s.router.Handler())
}

func (s *srv) loadAuthRouter() {
	s.router = router.New(s.ctx)
	s.router.Before(middleware.WithStartTime())
	s.router.AddCloser(middleware.Logger())
	s.router.AddCloser(middleware.Prometheus())

	router.GET(s.router, "/health", newHealthHandler("auth_service"))

	// Public authentication API.
	authRouter := s.router.Branch()
	authRouter.After(middleware.HandleSetAccessToken())
	authRouter.After(middleware.HandleSaveSession())
	{
		router.POST(authRouter, "/signup", s.authDomain.Signup)
		router.POST(authRouter, "/login", s.authDomain.Login)
		router.POST(authRouter, "/refresh", s.authDomain.Refresh)
	}

	// Balance API, called by the processing service when granting rewards.
	router.POST(s.router, "/addGold", s.userDomain.AddGold)
	router.POST(s.router, "/addDiamonds", s.userDomain.AddDiamonds)

	// These following APIs need authentication with only Access Token.
	onlyTokenAuthRouter := s.router.Branch()
	onlyTokenAuthRouter.Before(middleware.NewAuthVerifier().WithAccessToken().Middleware())
	{
		router.GET(onlyTokenAuthRouter, "/getUser", s.userDomain.GetUser)
		router.POST(onlyTokenAuthRouter, "/updateUser", s.userDomain.UpdateUser)
	}
}
