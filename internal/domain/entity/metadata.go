package entity

// Metadata holds the SEO fields of a page.
type Metadata struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Keywords     []string   `json:"keywords,omitempty"`
	CanonicalURL string     `json:"canonical_url"`
	Robots       string     `json:"robots"`
	OpenGraph    OpenGraph  `json:"open_graph"`
	Twitter      TwitterTag `json:"twitter"`
}

type OpenGraph struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	SiteName    string   `json:"site_name"`
	Locale      string   `json:"locale"`
	Type        string   `json:"type"`
	Images      []string `json:"images"`
}

type TwitterTag struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Creator     string   `json:"creator"`
	Images      []string `json:"images"`
}
