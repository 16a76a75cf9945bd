package usecase

import "github.com/jasonzhang/portfolio/internal/domain/entity"

var navigationLinks = []entity.LinkGroup{
	{
		Title:     "Navigate",
		A11yTitle: "Navigation links",
		Links: []entity.Link{
			{Title: "Home", Href: "/", ClassName: "text-brand"},
			{Title: "Blog", Href: "/blog", ClassName: "text-orange"},
			{Title: "Projects", Href: "/projects", ClassName: "text-purple"},
			{Title: "About", Href: "/about", ClassName: "text-green"},
		},
	},
}

var projects = []entity.Project{
	{
		Name:        "Frames",
		Description: "Wallpapers dashboard for Android apps",
		Link:        "https://github.com/jahirfiquitiva/Frames",
		Icon:        "/media/projects/frames.png",
		Color:       "#00b8d4",
		Featured:    true,
	},
	{
		Name:        "Blueprint",
		Description: "Icon pack dashboard for Android",
		Link:        "https://github.com/jahirfiquitiva/Blueprint",
		Icon:        "/media/projects/blueprint.png",
		Color:       "#0064ff",
		Featured:    true,
	},
	{
		Name:        "Kuper",
		Description: "KWGT and Zooper widgets dashboard",
		Link:        "https://github.com/jahirfiquitiva/Kuper",
		Icon:        "/media/projects/kuper.png",
		Color:       "#ff6f00",
		Featured:    true,
	},
	{
		Name:        "ChipView",
		Description: "Simple chip views for Android",
		Link:        "https://github.com/jahirfiquitiva/ChipView",
		Color:       "#8bc34a",
	},
	{
		Name:        "FABsMenu",
		Description: "Floating action buttons menu with expand and collapse animations",
		Link:        "https://github.com/jahirfiquitiva/FABsMenu",
		Color:       "#e91e63",
	},
	{
		Name:        "jahir.dev",
		Description: "Personal website and blog",
		Link:        "https://github.com/jahirfiquitiva/jahir.dev",
		Color:       "#7c4dff",
	},
}

const organizationFoundingDate = "1996-11-02T23:30:00.000Z"

func organizationJSONLD(baseURL string) map[string]any {
	return map[string]any{
		"@context":     "https://schema.org",
		"@type":        "Organization",
		"image":        baseURL + "/media/jahir/jahir-hd.jpg",
		"url":          baseURL,
		"sameAs":       []string{baseURL + "/about"},
		"logo":         baseURL + "/media/brand/logo-full.png",
		"name":         "Jason Zhang",
		"description":  "Passionate and creative frontend software engineer from China",
		"email":        "2405476994@qq.com",
		"foundingDate": organizationFoundingDate,
	}
}
