package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
)

var defaultReleaseRepos = []string{"Frames", "Blueprint", "Kuper", "ChipView", "FABsMenu"}

// Config holds application configuration values.
type Config struct {
	Port               string
	AppBaseURL         string
	MongoURI           string
	MongoDBName        string
	RedisURL           string
	FeaturedPostsTTL   time.Duration
	RankingTimeout     time.Duration
	ReleaseCacheTTL    time.Duration
	GitHubToken        string
	ReleasesOwner      string
	ReleaseRepos       []string
	NotionAPIKey       string
	NotionDatabaseID   string
	JWTSecret          string
	AdminPasswordHash  string
	UmamiWebsiteID     string
	IsTemplate         bool
	RateLimitPerSecond float64
	LogLevel           string
	CORSAllowOrigins   []string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		AppBaseURL:         strings.TrimRight(getEnv("APP_BASE_URL", "https://jahir.dev"), "/"),
		MongoURI:           getEnv("MONGODB_URI", ""),
		MongoDBName:        getEnv("MONGODB_DB_NAME", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		FeaturedPostsTTL:   time.Hour * time.Duration(getEnvAsInt("FEATURED_POSTS_TTL_HOURS", 24)),
		RankingTimeout:     time.Second * time.Duration(getEnvAsInt("RANKING_TIMEOUT_SECONDS", 5)),
		ReleaseCacheTTL:    time.Minute * time.Duration(getEnvAsInt("RELEASE_CACHE_TTL_MINUTES", 60)),
		GitHubToken:        getEnv("GITHUB_TOKEN", ""),
		ReleasesOwner:      getEnv("GITHUB_RELEASES_OWNER", "jahirfiquitiva"),
		ReleaseRepos:       getEnvAsList("RELEASE_REPOS", defaultReleaseRepos),
		NotionAPIKey:       getEnv("NOTION_API_KEY", ""),
		NotionDatabaseID:   getEnv("NOTION_DATABASE_ID", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AdminPasswordHash:  getEnv("ADMIN_PASSWORD_HASH", ""),
		UmamiWebsiteID:     getEnv("UMAMI_WEBSITE_ID", ""),
		IsTemplate:         getEnvAsBool("IS_TEMPLATE", true),
		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigins:   getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}),
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

func (c *Config) GetPort() string                    { return c.Port }
func (c *Config) GetAppBaseURL() string              { return c.AppBaseURL }
func (c *Config) GetMongoURI() string                { return c.MongoURI }
func (c *Config) GetMongoDBName() string             { return c.MongoDBName }
func (c *Config) GetRedisURL() string                { return c.RedisURL }
func (c *Config) GetFeaturedPostsTTL() time.Duration { return c.FeaturedPostsTTL }
func (c *Config) GetRankingTimeout() time.Duration   { return c.RankingTimeout }
func (c *Config) GetReleaseCacheTTL() time.Duration  { return c.ReleaseCacheTTL }
func (c *Config) GetGitHubToken() string             { return c.GitHubToken }
func (c *Config) GetReleasesOwner() string           { return c.ReleasesOwner }
func (c *Config) GetReleaseRepos() []string          { return c.ReleaseRepos }
func (c *Config) GetNotionAPIKey() string            { return c.NotionAPIKey }
func (c *Config) GetNotionDatabaseID() string        { return c.NotionDatabaseID }
func (c *Config) GetJWTSecret() string               { return c.JWTSecret }
func (c *Config) GetAdminPasswordHash() string       { return c.AdminPasswordHash }
func (c *Config) GetUmamiWebsiteID() string          { return c.UmamiWebsiteID }
func (c *Config) GetIsTemplate() bool                { return c.IsTemplate }
func (c *Config) GetRateLimitPerSecond() float64     { return c.RateLimitPerSecond }
func (c *Config) GetLogLevel() string                { return c.LogLevel }
func (c *Config) GetCORSAllowOrigins() []string      { return c.CORSAllowOrigins }

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil && value > 0 {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil && value > 0 {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}

// getEnvAsList splits a comma separated value, dropping blanks.
func getEnvAsList(name string, fallback []string) []string {
	raw := getEnv(name, "")
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), fallback...)
	}
	return out
}
