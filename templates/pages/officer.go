package pages

import (
	"context"
	"io"

	"trace_app_go/models"
	"trace_app_go/templates/components"

	"github.com/a-h/templ"
)

// Officer lookup messages
const (
	MsgOfficerNotAssigned = "Officer not yet assigned for this case."
	MsgNoCaseForID        = "No case found with this ID."
)

// OfficerLookupResult is what the officer page shows after a search
type OfficerLookupResult struct {
	Complaint *models.Complaint
	Warning   string
	Error     string
}

// OfficerLookup renders the case id form and the assigned officer's contact details
func OfficerLookup(csrfToken, caseID string, result OfficerLookupResult) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<h1>Contact Officer Assigned to Your Case</h1><form method="post" action="/officer">`)
		h.Component(ctx, components.CSRFField(csrfToken))
		h.Component(ctx, components.TextInput("Enter your Case ID", "case_id", "number", caseID))
		h.Raw(`<button type="submit">Find Officer</button></form>`)

		h.Component(ctx, components.Flash(components.FlashWarning, result.Warning))
		h.Component(ctx, components.Flash(components.FlashError, result.Error))
		if c := result.Complaint; c != nil && c.IsAssigned() {
			h.Component(ctx, components.Flash(components.FlashSuccess, "Officer Name: "+c.OfficerAssigned))
			h.Component(ctx, components.Flash(components.FlashInfo, "Station: "+c.Station))
			h.Component(ctx, components.Flash(components.FlashInfo, "Phone: "+c.Phone))
		}
		return h.Err()
	})
	return components.Layout("Contact Officer", body)
}
