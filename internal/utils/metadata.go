package utils

import (
	"strings"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
)

const (
	SiteName        = "Jason Zhang"
	SiteURL         = "https://jahir.dev"
	DefaultTitle    = "Jason Zhang – Frontend Software Engineer"
	DefaultDesc     = "I'm a passionate and creative frontend software engineer from China. Visit my website to learn more about me and my projects"
	DefaultImage    = "https://jahir.dev/banner.png"
	TwitterHandle   = "@jahirfiquitiva"
	defaultRobots   = "index, follow"
	defaultLocale   = "en_US"
	defaultOGType   = "website"
	defaultTwitCard = "summary_large_image"
)

var DefaultKeywords = []string{
	"jason zhang", "jason", "open-source", "full-stack", "frontend",
	"software engineer", "china", "developer", "development", "android", "web",
}

// MetadataOptions are the per-page inputs of CreateMetadata.
// Empty fields fall back to the site defaults.
type MetadataOptions struct {
	Title       string
	Description string
	ExactURL    string
	Keywords    []string
	Image       string
	// BaseURL overrides SiteURL, e.g. for preview deployments.
	BaseURL string
}

// CreateMetadata builds the SEO block for a page.
func CreateMetadata(opts MetadataOptions) entity.Metadata {
	title := firstNonEmpty(opts.Title, DefaultTitle)
	description := firstNonEmpty(opts.Description, DefaultDesc)
	base := strings.TrimRight(firstNonEmpty(opts.BaseURL, SiteURL), "/")
	canonical := firstNonEmpty(opts.ExactURL, base)
	image := firstNonEmpty(opts.Image, DefaultImage)

	keywords := opts.Keywords
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}

	return entity.Metadata{
		Title:        title,
		Description:  description,
		Keywords:     append([]string(nil), keywords...),
		CanonicalURL: canonical,
		Robots:       defaultRobots,
		OpenGraph: entity.OpenGraph{
			Title:       title,
			Description: description,
			URL:         canonical,
			SiteName:    SiteName,
			Locale:      defaultLocale,
			Type:        defaultOGType,
			Images:      []string{image},
		},
		Twitter: entity.TwitterTag{
			Card:        defaultTwitCard,
			Title:       title,
			Description: description,
			Creator:     TwitterHandle,
			Images:      []string{image},
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
