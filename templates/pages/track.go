package pages

import (
	"context"
	"fmt"
	"io"

	"trace_app_go/models"
	"trace_app_go/templates/components"

	"github.com/a-h/templ"
)

// MsgNoComplaintForContact is shown when a contact number has no cases
const MsgNoComplaintForContact = "No complaint found with this contact number."

// Track renders the status lookup form and, once searched, the matching cases
func Track(csrfToken, contact string, complaints []models.Complaint, searched bool) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<h1>Track Your Investigation</h1><form method="post" action="/track">`)
		h.Component(ctx, components.CSRFField(csrfToken))
		h.Component(ctx, components.TextInput("Enter your contact number to check status", "contact", "tel", contact))
		h.Raw(`<button type="submit">Track</button></form>`)

		if searched && len(complaints) == 0 {
			h.Component(ctx, components.Flash(components.FlashWarning, MsgNoComplaintForContact))
		}
		for i := range complaints {
			h.Component(ctx, caseCard(&complaints[i]))
		}
		return h.Err()
	})
	return components.Layout("Track Investigation", body)
}

func caseCard(c *models.Complaint) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<div class="case"><h2>`)
		h.Text(fmt.Sprintf("Case ID: %d", c.ID))
		h.Raw(`</h2><p>Status: `)
		h.Text(c.Status)
		h.Raw(`</p><p>Officer Assigned: `)
		h.Text(c.OfficerAssigned)
		h.Raw(`</p><p>Station: `)
		h.Text(c.Station)
		h.Raw(`</p><p>Phone: `)
		h.Text(c.Phone)
		h.Raw(`</p><p><small>Filed `)
		h.Text(components.FormatRelativeTime(c.CreatedAt))
		h.Raw(`</small></p></div>`)
		return h.Err()
	})
}
