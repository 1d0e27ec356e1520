package components

import (
	"context"
	"io"

	"trace_app_go/middleware"

	"github.com/a-h/templ"
)

const baseStyle = `
body { font-family: system-ui, sans-serif; margin: 0; color: #1f2933; background: #f5f7fa; }
nav { background: #102a43; padding: 0.75rem 1.5rem; }
nav a { color: #f0f4f8; margin-right: 1.25rem; text-decoration: none; }
main { max-width: 56rem; margin: 2rem auto; padding: 0 1.5rem; }
form label { display: block; margin-top: 0.75rem; font-weight: 600; }
form input, form textarea { width: 100%; padding: 0.5rem; box-sizing: border-box; }
button { margin-top: 1rem; padding: 0.5rem 1.25rem; }
.flash { padding: 0.75rem 1rem; border-radius: 4px; margin: 1rem 0; }
.flash-success { background: #e3f9e5; }
.flash-info { background: #e6f6ff; }
.flash-warning { background: #fffbea; }
.flash-error { background: #ffe3e3; }
.case { background: #fff; padding: 1rem; margin: 1rem 0; border-radius: 4px; }
table { width: 100%; border-collapse: collapse; background: #fff; }
th, td { text-align: left; padding: 0.4rem; border-bottom: 1px solid #d9e2ec; font-size: 0.9rem; }
`

// Flash kinds
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashError   = "error"
)

// Layout wraps page content with the document head and navigation
func Layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTML(w)
		h.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.Raw(`<title>`)
		h.Text(title)
		h.Raw(` | TRACE</title><style`)
		h.Attr("nonce", middleware.GetNonce(ctx))
		h.Raw(`>` + baseStyle + `</style></head><body>`)
		h.Raw(`<nav><a href="/complaints/new">Register Complaint</a><a href="/track">Track Investigation</a>`)
		h.Raw(`<a href="/officer">Contact Officer</a><a href="/admin">Admin</a></nav><main>`)
		h.Component(ctx, content)
		h.Raw(`</main></body></html>`)
		return h.Err()
	})
}

// Flash renders a status message box; empty messages render nothing
func Flash(kind, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if message == "" {
			return nil
		}
		h := NewHTML(w)
		h.Raw(`<div`)
		h.Attr("class", "flash flash-"+kind)
		h.Attr("role", "status")
		h.Raw(`>`)
		h.Text(message)
		h.Raw(`</div>`)
		return h.Err()
	})
}

// CSRFField is the hidden token input every POST form carries
func CSRFField(token string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTML(w)
		h.Raw(`<input type="hidden"`)
		h.Attr("name", middleware.CSRFFormField)
		h.Attr("value", token)
		h.Raw(`>`)
		return h.Err()
	})
}

// TextInput renders a labelled input
func TextInput(label, name, inputType, value string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTML(w)
		h.Raw(`<label`)
		h.Attr("for", name)
		h.Raw(`>`)
		h.Text(label)
		h.Raw(`</label><input`)
		h.Attr("id", name)
		h.Attr("name", name)
		h.Attr("type", inputType)
		if value != "" {
			h.Attr("value", value)
		}
		h.Raw(`>`)
		return h.Err()
	})
}
