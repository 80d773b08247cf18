package testutil

import (
	"time"

	"github.com/artfriendly/go-api-server/internal/config"
)

// NewTestConfig creates a test configuration
// This removes the need for environment variables during testing
func NewTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name: "artfriendly-api-test",
			Env:  "test",
			Port: 8080,
		},
		Database: config.DatabaseConfig{
			Driver:          config.DriverSQLite,
			Service:         ":memory:",
			MaxIdleConns:    1,
			MaxOpenConns:    1,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 10 * time.Minute,
			IsAutoMigrate:   true,
		},
		JWT: config.JWTConfig{
			Secret:        "test-jwt-secret-key-must-be-at-least-32-characters-long",
			Expiry:        24 * time.Hour,
			RefreshExpiry: 168 * time.Hour,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           86400,
		},
		Server: config.ServerConfig{
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			GracefulTimeout: 30 * time.Second,
		},
		Redis: config.RedisConfig{
			Addr: "localhost:6379",
		},
		S3: config.S3Config{
			Bucket: "artfriendly-test",
			Region: "ap-northeast-2",
		},
		OAuth: config.OAuthConfig{
			CallbackBaseURL: "http://localhost:8080",
			RedirectURL:     "http://localhost:3000/oauth/callback",
			StateTTL:        5 * time.Minute,
			OTUCodeTTL:      time.Minute,
			Kakao: config.OAuthProviderConfig{
				ClientID:     "kakao-client-id",
				ClientSecret: "kakao-client-secret",
			},
		},
		Profile: config.ProfileConfig{
			DefaultImageURL: "https://cdn.artfriendly.test/default.png",
		},
		Cache: config.CacheConfig{
			ExhibitionPageTTL: time.Minute,
			EndingTTL:         time.Minute,
		},
		Ranking: config.RankingConfig{
			Cron: "0 * * * *",
		},
		Admin: config.AdminConfig{
			Email:    "admin@artfriendly.test",
			Password: "admin-password",
		},
	}
}
