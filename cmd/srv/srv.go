package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/rateshelf/backend/config"
	"github.com/rateshelf/backend/internal/domain"
	"github.com/rateshelf/backend/internal/entity"
	"github.com/rateshelf/backend/internal/repository"
	"github.com/rateshelf/backend/pkg/cache"
	"github.com/rateshelf/backend/pkg/logger"
	"github.com/rateshelf/backend/pkg/router"
	"github.com/rateshelf/backend/pkg/xcontext"
	"github.com/rateshelf/backend/pkg/xredis"
)

type srv struct {
	ctx context.Context

	configs config.Configs
	logger  logger.Logger

	db          *gorm.DB
	redisClient xredis.Client
	cacheStore  *cache.Store

	userRepo          repository.UserRepository
	ratingRepo        repository.RatingRepository
	followRepo        repository.FollowRepository
	likeRepo          repository.LikeRepository
	notificationRepo  repository.NotificationRepository
	contentStatusRepo repository.ContentStatusRepository
	pinnedItemRepo    repository.PinnedItemRepository
	challengeRepo     repository.ChallengeRepository
	albumTrackRepo    repository.AlbumTrackRepository

	userDomain         domain.UserDomain
	followDomain       domain.FollowDomain
	ratingDomain       domain.RatingDomain
	feedDomain         domain.FeedDomain
	statisticDomain    domain.StatisticDomain
	notificationDomain domain.NotificationDomain
	libraryDomain      domain.LibraryDomain
	pinDomain          domain.PinDomain
	trackDomain        domain.TrackDomain
	challengeDomain    domain.ChallengeDomain
	celebrationDomain  domain.CelebrationDomain

	router *router.Router
	server *http.Server
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func getIntEnv(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}

func (s *srv) loadConfig() {
	s.configs = config.Configs{
		Env: getEnv("ENV", "local"),
		ApiServer: config.ServerConfigs{
			Host:         getEnv("HOST", "localhost"),
			Port:         getEnv("PORT", "8080"),
			DefaultLimit: getIntEnv("API_DEFAULT_LIMIT", 20),
			MaxLimit:     getIntEnv("API_MAX_LIMIT", 50),
		},
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			Database: getEnv("MYSQL_DATABASE", "rateshelf"),
			User:     getEnv("MYSQL_USER", "rateshelf"),
			Password: getEnv("MYSQL_PASSWORD", "rateshelf"),
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDRESS", "localhost:6379"),
		},
		Feature: config.FeatureConfigs{
			RealCommunityScores: getEnv("REAL_COMMUNITY_SCORES", "false") == "true",
		},
	}

	s.ctx = xcontext.WithConfigs(context.Background(), s.configs)
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, s.db)

	if err := entity.MigrateTable(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadRedis() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadCache() {
	s.cacheStore = cache.NewStore()
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.ratingRepo = repository.NewRatingRepository()
	s.followRepo = repository.NewFollowRepository()
	s.likeRepo = repository.NewLikeRepository()
	s.notificationRepo = repository.NewNotificationRepository()
	s.contentStatusRepo = repository.NewContentStatusRepository()
	s.pinnedItemRepo = repository.NewPinnedItemRepository()
	s.challengeRepo = repository.NewChallengeRepository()
	s.albumTrackRepo = repository.NewAlbumTrackRepository()
}

func (s *srv) loadDomains() {
	var scoreProvider domain.ScoreProvider
	if s.configs.Feature.RealCommunityScores {
		scoreProvider = domain.NewRatingScoreProvider(s.ratingRepo, s.cacheStore)
	} else {
		scoreProvider = domain.NewPlaceholderScoreProvider()
	}

	s.userDomain = domain.NewUserDomain(s.userRepo, s.cacheStore)
	s.followDomain = domain.NewFollowDomain(s.followRepo, s.userRepo, s.notificationRepo, s.cacheStore)
	s.ratingDomain = domain.NewRatingDomain(
		s.ratingRepo, s.likeRepo, s.userRepo, s.notificationRepo, scoreProvider, s.cacheStore)
	s.feedDomain = domain.NewFeedDomain(s.ratingRepo, s.followRepo, s.cacheStore)
	s.statisticDomain = domain.NewStatisticDomain(s.ratingRepo, time.Local)
	s.notificationDomain = domain.NewNotificationDomain(s.notificationRepo, s.cacheStore)
	s.libraryDomain = domain.NewLibraryDomain(s.contentStatusRepo, s.ratingRepo, s.cacheStore)
	s.pinDomain = domain.NewPinDomain(s.pinnedItemRepo, s.cacheStore)
	s.trackDomain = domain.NewTrackDomain(s.albumTrackRepo, s.cacheStore)
	s.challengeDomain = domain.NewChallengeDomain(s.challengeRepo, s.ratingRepo)
	s.celebrationDomain = domain.NewCelebrationDomain(s.ratingRepo, s.redisClient, time.Local)
}

func (s *srv) startServer() {
	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: s.router.Handler(),
	}

	s.logger.Infof("Starting server on %s", s.configs.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}
}
