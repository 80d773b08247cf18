package router

import (
	"fmt"

	"github.com/artfriendly/go-api-server/internal/auth"
	"github.com/artfriendly/go-api-server/internal/config"
	"github.com/artfriendly/go-api-server/internal/dambyeolag"
	"github.com/artfriendly/go-api-server/internal/exhibition"
	"github.com/artfriendly/go-api-server/internal/member"
	"github.com/artfriendly/go-api-server/internal/meta"
	"github.com/artfriendly/go-api-server/internal/model"
	"github.com/artfriendly/go-api-server/internal/shared/database"
	"github.com/artfriendly/go-api-server/internal/shared/metrics"
	"github.com/artfriendly/go-api-server/internal/shared/middleware"
	"github.com/artfriendly/go-api-server/internal/shared/scheduler"
	"github.com/artfriendly/go-api-server/internal/shared/storage"
	"github.com/artfriendly/go-api-server/internal/shared/token"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Infra holds the external connections opened by main
type Infra struct {
	DB        *database.DB
	Redis     *redis.Client
	Storage   storage.Storage
	Metrics   *metrics.Metrics
	Scheduler *scheduler.Scheduler
}

// App exposes the components main needs after wiring
type App struct {
	MemberService *member.MemberService
	RankingJob    *exhibition.RankingJob
}

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, infra Infra) (*App, error) {
	db := infra.DB.DB

	// Meta handler (health check, metrics)
	metaHandler := meta.NewHandler(cfg, infra.DB, infra.Redis)
	router.GET("/health", metaHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// repository
	memberRepository := member.NewMemberRepository()
	exhibitionRepository := exhibition.NewExhibitionRepository()
	activityRepository := exhibition.NewActivityRepository()
	dambyeolagRepository := dambyeolag.NewDambyeolagRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)

	// service
	exhibitionService := exhibition.NewExhibitionService(
		db, exhibitionRepository, activityRepository, memberRepository,
		exhibition.NewCache(infra.Redis, cfg.Cache), infra.Metrics,
	)
	dambyeolagService := dambyeolag.NewDambyeolagService(
		db, dambyeolagRepository, exhibitionRepository, memberRepository, infra.Metrics,
	)
	// 탈퇴 시 담벼락 -> 전시회 활동 순으로 정리
	memberService := member.NewMemberService(
		db, memberRepository, infra.Storage, cfg.Profile, dambyeolagService, exhibitionService,
	)
	authService := auth.NewAuthService(
		db, memberRepository, memberService, tokenManager,
		auth.NewProviders(cfg.OAuth), infra.Redis, cfg.OAuth, infra.Metrics,
	)

	// scheduled jobs
	rankingJob := exhibition.NewRankingJob(exhibitionService)
	if err := infra.Scheduler.Register(cfg.Ranking.Cron, rankingJob); err != nil {
		return nil, fmt.Errorf("랭킹 작업 등록 실패: %w", err)
	}

	// handler
	authHandler := auth.NewAuthHandler(authService)
	memberHandler := member.NewMemberHandler(memberService)
	exhibitionHandler := exhibition.NewExhibitionHandler(exhibitionService)
	dambyeolagHandler := dambyeolag.NewDambyeolagHandler(dambyeolagService)

	// OAuth2 login flow
	router.GET("/oauth2/authorization/:provider", authHandler.Authorize)
	router.GET("/login/oauth2/code/:provider", authHandler.Callback)
	oauth := router.Group("/oauth")
	{
		oauth.GET("/token", authHandler.IssueToken)
		oauth.POST("/token/refresh", authHandler.Refresh)
	}

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/admin/login", authHandler.AdminLogin)
	}

	jwt := middleware.JWT(tokenManager)

	memberV1 := router.Group("/api/v1/members")
	memberV1.Use(jwt)
	{
		memberV1.GET("/me", memberHandler.GetMemberDetails)
		memberV1.GET("/profile", memberHandler.GetProfile)
		memberV1.PATCH("", memberHandler.UpdateMember)
		memberV1.PUT("/image", memberHandler.UpdateMemberImage)
		memberV1.DELETE("", memberHandler.Withdraw)
	}

	exhibitionV1 := router.Group("/api/v1/exhibitions")
	exhibitionV1.Use(jwt)
	{
		exhibitionV1.GET("", exhibitionHandler.GetExhibitionPage)
		exhibitionV1.GET("/ending", exhibitionHandler.GetEndingExhibitions)
		exhibitionV1.GET("/popular", exhibitionHandler.GetPopularRanking)
		exhibitionV1.GET("/likes", exhibitionHandler.GetLikedExhibitions)
		exhibitionV1.GET("/:exhibitionId", exhibitionHandler.GetExhibitionDetails)
		exhibitionV1.POST("/:exhibitionId/likes", exhibitionHandler.AddLike)
		exhibitionV1.DELETE("/:exhibitionId/likes", exhibitionHandler.DeleteLike)
		exhibitionV1.POST("/:exhibitionId/hopes", exhibitionHandler.AddHope)
		exhibitionV1.PUT("/:exhibitionId/hopes", exhibitionHandler.UpdateHope)
		exhibitionV1.DELETE("/:exhibitionId/hopes", exhibitionHandler.DeleteHope)
	}

	dambyeolagV1 := router.Group("/api/v1/dambyeolags")
	dambyeolagV1.Use(jwt)
	{
		dambyeolagV1.POST("", dambyeolagHandler.Create)
		dambyeolagV1.GET("/lists", dambyeolagHandler.GetPage)
		dambyeolagV1.GET("/bookmarks", dambyeolagHandler.GetBookmarked)
		dambyeolagV1.GET("/:dambyeolagId", dambyeolagHandler.GetDetails)
		dambyeolagV1.DELETE("/:dambyeolagId", dambyeolagHandler.Delete)
		dambyeolagV1.POST("/:dambyeolagId/bookmarks", dambyeolagHandler.AddBookmark)
		dambyeolagV1.DELETE("/:dambyeolagId/bookmarks", dambyeolagHandler.DeleteBookmark)
	}

	adminV1 := router.Group("/api/v1/admin")
	adminV1.Use(jwt, middleware.RequireRole(model.RoleAdmin))
	{
		adminV1.POST("/exhibitions", exhibitionHandler.CreateExhibitions)
		adminV1.PUT("/exhibitions", exhibitionHandler.UpdateExhibitions)
		adminV1.POST("/exhibitions/popular/refresh", exhibitionHandler.RefreshPopularRanking)
	}

	return &App{MemberService: memberService, RankingJob: rankingJob}, nil
}
