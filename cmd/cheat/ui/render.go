package ui

import (
	"fmt"
	"strings"

	"gocheat/internal/logging"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

// MarkdownFunc turns Markdown into terminal text.
type MarkdownFunc func(markdown string) (string, error)

// NewMarkdown returns a glamour-backed renderer wrapping at width. Without
// color it uses the "notty" style, which keeps the Markdown structure but
// emits no escape codes.
func NewMarkdown(width int, color bool) (MarkdownFunc, error) {
	style := glamour.WithStandardStyle("notty")
	if color {
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render, nil
}

// RenderOrRaw renders md, falling back to the raw text if rendering fails.
func RenderOrRaw(render MarkdownFunc, md string) string {
	if render == nil {
		return md
	}
	out, err := render(md)
	if err != nil {
		logging.Get(logging.CategoryUI).Warn("markdown render failed", zap.Error(err))
		return md
	}
	return strings.TrimRight(out, "\n") + "\n"
}
