package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/questlane/backend/config"
	"github.com/questlane/backend/internal/client"
	"github.com/questlane/backend/internal/domain"
	"github.com/questlane/backend/internal/repository"
	"github.com/questlane/backend/pkg/authenticator"
	"github.com/questlane/backend/pkg/logger"
	"github.com/questlane/backend/pkg/prometheus"
	"github.com/questlane/backend/pkg/router"
	"github.com/questlane/backend/pkg/xcontext"
	"github.com/questlane/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context
	app *cli.App

	configs *config.Configs

	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	rewardRepo       repository.RewardRepository
	questRepo        repository.QuestRepository
	userQuestRepo    repository.UserQuestRepository

	authDomain      domain.AuthDomain
	userDomain      domain.UserDomain
	rewardDomain    domain.RewardDomain
	questDomain     domain.QuestDomain
	userQuestDomain domain.UserQuestDomain

	redisClient xredis.Client

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(cctx *cli.Context) {
	configs, err := config.Load(cctx.String("config"))
	if err != nil {
		panic(err)
	}

	s.configs = configs
	s.ctx = xcontext.WithConfigs(context.Background(), *configs)
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
}

func (s *srv) loadDatabase() {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
}

func (s *srv) loadAuthenticator() {
	engine := authenticator.NewTokenEngine(s.configs.Auth.TokenSecret)
	s.ctx = xcontext.WithTokenEngine(s.ctx, engine)

	store := sessions.NewCookieStore([]byte(s.configs.Session.Secret))
	s.ctx = xcontext.WithSessionStore(s.ctx, store)
}

func (s *srv) loadRedis() {
	redisClient, err := xredis.NewClient(s.ctx)
	if err != nil {
		xcontext.Logger(s.ctx).Warnf("Cannot connect to redis, caching is disabled: %v", err)
		return
	}

	s.redisClient = redisClient
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.refreshTokenRepo = repository.NewRefreshTokenRepository()
	s.rewardRepo = repository.NewRewardRepository()
	s.questRepo = repository.NewQuestRepository()
	s.userQuestRepo = repository.NewUserQuestRepository()
}

func (s *srv) loadDomains() {
	processingCaller := client.NewProcessingCaller(s.configs.ProcessingEndpoints...)
	catalogCaller := client.NewCatalogCaller(s.configs.CatalogEndpoints...)
	authCaller := client.NewAuthCaller(s.configs.AuthEndpoints...)

	s.authDomain = domain.NewAuthDomain(s.userRepo, s.refreshTokenRepo, processingCaller)
	s.userDomain = domain.NewUserDomain(s.userRepo)
	s.rewardDomain = domain.NewRewardDomain(s.rewardRepo)
	s.questDomain = domain.NewQuestDomain(s.questRepo, s.rewardRepo, s.redisClient)
	s.userQuestDomain = domain.NewUserQuestDomain(s.userQuestRepo, catalogCaller, authCaller)
}

func (s *srv) startPrometheusServer() {
	go func() {
		promServer := &http.Server{
			Addr:    s.configs.PrometheusServer.Address(),
			Handler: prometheus.NewHandler(),
		}

		xcontext.Logger(s.ctx).Infof("Starting prometheus on %s", s.configs.PrometheusServer.Address())
		if err := promServer.ListenAndServe(); err != nil {
			xcontext.Logger(s.ctx).Errorf("Prometheus server stopped: %v", err)
		}
	}()
}

func (s *srv) startServer(serverConfigs config.ServerConfigs, handler http.Handler) error {
	s.server = &http.Server{
		Addr:    serverConfigs.Address(),
		Handler: handler,
	}

	xcontext.Logger(s.ctx).Infof("Starting server on %s", serverConfigs.Address())
	if err := s.server.ListenAndServe(); err != nil {
		return err
	}

	fmt.Println("server stop")
	return nil
}
