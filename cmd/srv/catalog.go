package main

import (
	"github.com/questlane/backend/internal/middleware"
	"github.com/questlane/backend/pkg/router"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCatalog(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()
	s.loadAuthenticator()
	s.loadRedis()
	s.loadRepos()
	s.loadDomains()
	s.loadCatalogRouter()
	s.startPrometheusServer()

	return s.startServer(s.configs.CatalogServer, s.router.Handler())
}

func (s *srv) loadCatalogRouter() {
	s.router = router.New(s.ctx)
	s.router.Before(middleware.WithStartTime())
	s.router.AddCloser(middleware.Logger())
	s.router.AddCloser(middleware.Prometheus())

	router.GET(s.router, "/health", newHealthHandler("quest_catalog_service"))

	// Read API, also used by the processing service.
	router.GET(s.router, "/getReward", s.rewardDomain.GetReward)
	router.GET(s.router, "/getListReward", s.rewardDomain.GetListReward)
	router.GET(s.router, "/getQuest", s.questDomain.GetQuest)
	router.GET(s.router, "/getListQuest", s.questDomain.GetListQuest)

	// These following APIs need authentication with only Access Token.
	onlyTokenAuthRouter := s.router.Branch()
	onlyTokenAuthRouter.Before(middleware.NewAuthVerifier().WithAccessToken().Middleware())
	{
		router.POST(onlyTokenAuthRouter, "/createReward", s.rewardDomain.CreateReward)
		router.POST(onlyTokenAuthRouter, "/updateReward", s.rewardDomain.UpdateReward)
		router.POST(onlyTokenAuthRouter, "/deleteReward", s.rewardDomain.DeleteReward)
		router.POST(onlyTokenAuthRouter, "/createQuest", s.questDomain.CreateQuest)
		router.POST(onlyTokenAuthRouter, "/updateQuest", s.questDomain.UpdateQuest)
		router.POST(onlyTokenAuthRouter, "/deleteQuest", s.questDomain.DeleteQuest)
	}
}
