package contract

// IMarkdownRenderer turns post markdown into sanitized HTML.
type IMarkdownRenderer interface {
	Render(markdown string) (string, error)
}
