package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HTML writes markup to w and remembers the first write error
type HTML struct {
	w   io.Writer
	err error
}

// NewHTML wraps w for page rendering
func NewHTML(w io.Writer) *HTML {
	return &HTML{w: w}
}

// Raw writes trusted markup as-is
func (h *HTML) Raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// Text writes escaped user content
func (h *HTML) Text(s string) {
	h.Raw(templ.EscapeString(s))
}

// Attr writes name="value" with the value escaped
func (h *HTML) Attr(name, value string) {
	h.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// Component renders a nested component in place
func (h *HTML) Component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// Err returns the first write error
func (h *HTML) Err() error {
	return h.err
}
