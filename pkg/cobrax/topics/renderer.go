package topics

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and the file extension and returns formatted content
	Render(content string, format string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// RendererFor picks glamour for terminals and plain text otherwise
func RendererFor(terminal bool, width int) Renderer {
	if !terminal {
		return &PlainRenderer{}
	}
	return &GlamourRenderer{Style: "auto", Width: width}
}
