package entity

import "encoding/json"

// Project is a portfolio entry shown on the home and projects pages.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	Stars       int    `json:"stars,omitempty"`
	Featured    bool   `json:"featured"`
}

type Link struct {
	Title     string `json:"title"`
	A11yTitle string `json:"a11y_title,omitempty"`
	Href      string `json:"href"`
	ClassName string `json:"class_name,omitempty"`
}

type LinkGroup struct {
	Title     string `json:"title"`
	A11yTitle string `json:"a11y_title,omitempty"`
	Links     []Link `json:"links"`
}

// SiteInfo is what the layout needs on every page.
type SiteInfo struct {
	Metadata       Metadata    `json:"metadata"`
	Navigation     []LinkGroup `json:"navigation"`
	UmamiWebsiteID string      `json:"umami_website_id,omitempty"`
	IsTemplate     bool        `json:"is_template"`
}

type HomePage struct {
	Metadata         Metadata       `json:"metadata"`
	FeaturedPosts    []Post         `json:"featured_posts"`
	FeaturedProjects []Project      `json:"featured_projects"`
	JSONLD           map[string]any `json:"json_ld"`
}

type ProjectsPage struct {
	Metadata Metadata  `json:"metadata"`
	Projects []Project `json:"projects"`
}

// NotionPage is a row of the configured Notion database.
type NotionPage struct {
	ID             string          `json:"id"`
	URL            string          `json:"url"`
	CreatedTime    string          `json:"created_time"`
	LastEditedTime string          `json:"last_edited_time"`
	Properties     json.RawMessage `json:"properties,omitempty"`
}
