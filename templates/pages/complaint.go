package pages

import (
	"context"
	"fmt"
	"io"
	"time"

	"trace_app_go/models"
	"trace_app_go/services"
	"trace_app_go/templates/components"

	"github.com/a-h/templ"
)

// MsgFillAllFields is shown when a required registration field is empty
const MsgFillAllFields = "Please fill all fields before submitting."

// ComplaintForm renders the citizen registration form, keeping any values
// already entered
func ComplaintForm(csrfToken string, form services.ComplaintForm, warning string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<h1>Register a Complaint</h1>`)
		h.Component(ctx, components.Flash(components.FlashWarning, warning))
		h.Raw(`<form method="post" action="/complaints">`)
		h.Component(ctx, components.CSRFField(csrfToken))
		h.Component(ctx, components.TextInput("Your Name", "name", "text", form.Name))
		h.Component(ctx, components.TextInput("Contact Number", "contact", "tel", form.Contact))
		h.Component(ctx, components.TextInput("Residential Area", "area", "text", form.Area))
		h.Component(ctx, components.TextInput("Incident Date", "incident_date", "date", form.IncidentDate))
		h.Component(ctx, components.TextInput("Incident Location", "incident_place", "text", form.IncidentPlace))
		h.Raw(`<label for="description">Describe the incident</label><textarea id="description" name="description" rows="6">`)
		h.Text(form.Description)
		h.Raw(`</textarea><button type="submit">Submit Complaint</button></form>`)
		return h.Err()
	})
	return components.Layout("Register a Complaint", body)
}

// ComplaintRegistered confirms a registration and offers the formal report.
// assignIn is the wait before an officer is assigned.
func ComplaintRegistered(complaint *models.Complaint, assignIn time.Duration) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		reportURL := fmt.Sprintf("/complaints/%d/report", complaint.ID)

		h.Raw(`<h1>Register a Complaint</h1>`)
		h.Component(ctx, components.Flash(components.FlashSuccess, "Complaint registered successfully."))
		h.Component(ctx, components.Flash(components.FlashInfo, fmt.Sprintf("Your case ID is: %d", complaint.ID)))
		h.Raw(`<p>An officer will be assigned in about `)
		h.Text(assignIn.String())
		h.Raw(`.</p>`)
		h.Raw(`<p><a`)
		h.Attr("href", reportURL)
		h.Raw(`>Download Formal Complaint</a> &middot; <a`)
		h.Attr("href", reportURL+"?format=pdf")
		h.Raw(`>PDF</a></p><pre class="case">`)
		h.Text(complaint.FormattedText)
		h.Raw(`</pre>`)
		return h.Err()
	})
	return components.Layout("Complaint Registered", body)
}
