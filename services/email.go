package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	textTemplate "text/template"

	"trace_app_go/config"
	"trace_app_go/models"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email, log *zap.Logger) error {
	// In test mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmail(log, email)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Info("Email sent via Resend", zap.String("id", sent.Id), zap.Strings("to", email.To))
	return nil
}

// logEmail writes the message to the log in test mode
func logEmail(log *zap.Logger, email *Email) {
	log.Info("Email logged (test mode, not sent)",
		zap.Strings("to", email.To),
		zap.String("subject", email.Subject),
		zap.String("text", email.TextBody),
		zap.String("html", truncate(email.HTMLBody, 500)),
	)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// Notifier is told about every assignment made by the system
type Notifier interface {
	AssignmentMade(ctx context.Context, complaint models.Complaint) error
}

// EmailNotifier mails a dispatch notice for each new assignment
type EmailNotifier struct {
	cfg *config.Config
	log *zap.Logger
}

var _ Notifier = (*EmailNotifier)(nil)

// NewEmailNotifier creates a notifier that sends to cfg.DispatchEmail
func NewEmailNotifier(cfg *config.Config, log *zap.Logger) *EmailNotifier {
	return &EmailNotifier{cfg: cfg, log: log}
}

// AssignmentMade sends the dispatch notice. Without a dispatch address nothing is sent.
func (n *EmailNotifier) AssignmentMade(ctx context.Context, complaint models.Complaint) error {
	if n.cfg.DispatchEmail == "" {
		n.log.Debug("DISPATCH_EMAIL not set, skipping assignment notice", zap.Uint("complaint_id", complaint.ID))
		return nil
	}

	email, err := BuildAssignmentEmail(n.cfg.DispatchEmail, complaint)
	if err != nil {
		return err
	}
	return SendEmail(n.cfg, email, n.log)
}

var assignmentHTML = template.Must(template.New("assignment_html").Parse(`<h2>Case #{{.ID}} assigned</h2>
<p><strong>Officer:</strong> {{.OfficerAssigned}} ({{.Station}}, {{.Phone}})</p>
<p><strong>Complainant:</strong> {{.Name}} / {{.Contact}}</p>
<p><strong>Incident:</strong> {{.IncidentDate}} at {{.IncidentPlace}}</p>
<pre>{{.FormattedText}}</pre>`))

var assignmentText = textTemplate.Must(textTemplate.New("assignment_text").Parse(`Case #{{.ID}} assigned

Officer: {{.OfficerAssigned}} ({{.Station}}, {{.Phone}})
Complainant: {{.Name}} / {{.Contact}}
Incident: {{.IncidentDate}} at {{.IncidentPlace}}
{{.FormattedText}}`))

// BuildAssignmentEmail renders the dispatch notice for an assigned complaint
func BuildAssignmentEmail(to string, complaint models.Complaint) (*Email, error) {
	var htmlBuf, textBuf bytes.Buffer
	if err := assignmentHTML.Execute(&htmlBuf, complaint); err != nil {
		return nil, fmt.Errorf("failed to render assignment email: %w", err)
	}
	if err := assignmentText.Execute(&textBuf, complaint); err != nil {
		return nil, fmt.Errorf("failed to render assignment email: %w", err)
	}

	return &Email{
		To:       []string{to},
		Subject:  fmt.Sprintf("Case #%d assigned to %s", complaint.ID, strings.TrimSpace(complaint.OfficerAssigned)),
		HTMLBody: "<html><body>\n" + SanitizeHTML(htmlBuf.String()) + "\n</body></html>",
		TextBody: textBuf.String(),
	}, nil
}
