package entity

import "time"

// Post is a blog entry. Drafts are stored but never listed publicly.
type Post struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Slug        string    `bson:"slug" json:"slug"`
	Title       string    `bson:"title" json:"title"`
	Excerpt     string    `bson:"excerpt" json:"excerpt"`
	Content     string    `bson:"content" json:"content,omitempty"`
	Tags        []string  `bson:"tags" json:"tags,omitempty"`
	Draft       bool      `bson:"draft" json:"draft"`
	PublishedAt time.Time `bson:"published_at" json:"published_at"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// Readable reports whether the post may be listed on the site.
func (p Post) Readable() bool {
	return !p.Draft
}

// PostDetail is a readable post together with its rendered body.
type PostDetail struct {
	Post Post
	HTML string
}

// RankedPost is one entry of the most-viewed ranking.
type RankedPost struct {
	Slug  string `bson:"_id" json:"slug"`
	Views int64  `bson:"views" json:"views"`
}

// PostUpdate carries the optional fields of an admin post edit.
type PostUpdate struct {
	Title   *string
	Excerpt *string
	Content *string
	Tags    []string
	Draft   *bool
}
