package topics

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and the extension it was read from and
	// returns the text to print
	Render(content string, format string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
