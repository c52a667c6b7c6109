package main

import (
	"github.com/questlane/backend/internal/middleware"
	"github.com/questlane/backend/pkg/router"
	"github.com/urfave/cli/v2"
)

func (s *srv) startProcessing(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()
	s.loadAuthenticator()
	s.loadRepos()
	s.loadDomains()
	s.loadProcessingRouter()
	s.startPrometheusServer()

	return s.startServer(s.configs.ProcessingServer, s.router.Handler())
}

func (s *srv) loadProcessingRouter() {
	s.router = router.New(s.ctx)
	s.router.Before(middleware.WithStartTime())
	s.router.AddCloser(middleware.Logger())
	s.router.AddCloser(middleware.Prometheus())

	router.GET(s.router, "/health", newHealthHandler("quest_processing_service"))

	router.GET(s.router, "/getUserQuests", s.userQuestDomain.GetUserQuests)

	// Called by the auth service on signup and login.
	router.POST(s.router, "/trackSignIn", s.userQuestDomain.TrackSignIn)

	// These following APIs need authentication with only Access Token.
	onlyTokenAuthRouter := s.router.Branch()
	onlyTokenAuthRouter.Before(middleware.NewAuthVerifier().WithAccessToken().Middleware())
	{
		router.POST(onlyTokenAuthRouter, "/assignQuest", s.userQuestDomain.AssignQuest)
		router.POST(onlyTokenAuthRouter, "/completeQuest", s.userQuestDomain.CompleteQuest)
		router.POST(onlyTokenAuthRouter, "/claimQuest", s.userQuestDomain.ClaimQuest)
	}
}
