package pages

import (
	"context"
	"fmt"
	"io"
	"time"

	"trace_app_go/models"
	"trace_app_go/templates/components"

	"github.com/a-h/templ"
)

// Admin panel messages
const (
	MsgIncorrectCredentials = "Incorrect password."
	MsgCaseUpdated          = "Case details updated successfully."
)

// AdminLogin renders the administrator sign-in form
func AdminLogin(csrfToken, username, errorMsg string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<h1>Admin Panel - Update Case Status</h1>`)
		h.Component(ctx, components.Flash(components.FlashError, errorMsg))
		h.Raw(`<form method="post" action="/admin/login">`)
		h.Component(ctx, components.CSRFField(csrfToken))
		h.Component(ctx, components.TextInput("Username", "username", "text", username))
		h.Component(ctx, components.TextInput("Enter Admin Password", "password", "password", ""))
		h.Raw(`<button type="submit">Sign in</button></form>`)
		return h.Err()
	})
	return components.Layout("Admin Login", body)
}

// AdminPanelData carries everything the admin panel renders
type AdminPanelData struct {
	CSRFToken  string
	Username   string
	Complaints []models.Complaint
	CaseID     string
	Success    string
	Warning    string
	Now        time.Time
}

// AdminPanel renders the case override form above the list of all cases
func AdminPanel(data AdminPanelData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<h1>Admin Panel - Update Case Status</h1><p>Signed in as `)
		h.Text(data.Username)
		h.Raw(`</p><form method="post" action="/admin/logout">`)
		h.Component(ctx, components.CSRFField(data.CSRFToken))
		h.Raw(`<button type="submit">Sign out</button></form>`)

		h.Component(ctx, components.Flash(components.FlashSuccess, data.Success))
		h.Component(ctx, components.Flash(components.FlashWarning, data.Warning))

		h.Raw(`<form method="post" action="/admin/cases">`)
		h.Component(ctx, components.CSRFField(data.CSRFToken))
		h.Component(ctx, components.TextInput("Case ID to Update", "case_id", "number", data.CaseID))
		h.Component(ctx, components.TextInput("New Status", "status", "text", ""))
		h.Component(ctx, components.TextInput("Officer Name", "officer", "text", ""))
		h.Component(ctx, components.TextInput("Police Station Area", "station", "text", ""))
		h.Component(ctx, components.TextInput("Officer Contact Number", "phone", "tel", ""))
		h.Raw(`<button type="submit">Update Case</button></form>`)

		h.Raw(`<p><a href="/admin/export">Download all cases (XLSX)</a> &middot; <a href="/admin/exports/latest">Latest nightly export</a></p>`)
		h.Raw(`<table><thead><tr><th>ID</th><th>Name</th><th>Contact</th><th>Status</th>`)
		h.Raw(`<th>Officer</th><th>Station</th><th>Phone</th><th>Assignment</th></tr></thead><tbody>`)
		for _, c := range data.Complaints {
			h.Raw(`<tr>`)
			for _, cell := range []string{
				fmt.Sprintf("%d", c.ID), c.Name, c.Contact, c.Status,
				c.OfficerAssigned, c.Station, c.Phone, components.FormatDueIn(c.AssignDueAt, data.Now),
			} {
				h.Raw(`<td>`)
				h.Text(cell)
				h.Raw(`</td>`)
			}
			h.Raw(`</tr>`)
		}
		h.Raw(`</tbody></table>`)
		return h.Err()
	})
	return components.Layout("Admin Panel", body)
}
