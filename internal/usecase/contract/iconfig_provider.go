package usecasecontract

import "time"

// IConfigProvider exposes application configuration.
type IConfigProvider interface {
	GetPort() string
	GetAppBaseURL() string
	GetMongoURI() string
	GetMongoDBName() string
	GetRedisURL() string
	GetFeaturedPostsTTL() time.Duration
	GetRankingTimeout() time.Duration
	GetReleaseCacheTTL() time.Duration
	GetGitHubToken() string
	GetReleasesOwner() string
	GetReleaseRepos() []string
	GetNotionAPIKey() string
	GetNotionDatabaseID() string
	GetJWTSecret() string
	GetAdminPasswordHash() string
	GetUmamiWebsiteID() string
	GetIsTemplate() bool
	GetRateLimitPerSecond() float64
	GetLogLevel() string
	GetCORSAllowOrigins() []string
}
