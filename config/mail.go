package config

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/kmch-aqps/ovr-portal/models"
)

// Every OVR submission goes to the quality department's shared inbox.
// The recipient is fixed on purpose; only the sender account is configurable.
const reportRecipient = "aseer-kmch-aqps@moh.gov.sa"

type Mailer struct {
	dialer *gomail.Dialer
	sender string
}

func NewMailer(cfg *Config) *Mailer {
	d := gomail.NewDialer(cfg.MailServer, cfg.MailPort, cfg.MailUsername, cfg.MailPassword)
	// SSL forces an implicit-TLS connection; otherwise the dialer
	// upgrades via STARTTLS when the server offers it, which covers
	// MAIL_USE_TLS on the standard submission port.
	d.SSL = cfg.MailUseSSL
	return &Mailer{
		dialer: d,
		sender: cfg.MailUsername,
	}
}

// ReportBody serializes a report into the plain-text email body: a
// header line followed by every field as "Label: value", one per line,
// in fixed order. Empty fields keep their label with an empty value.
func ReportBody(r models.Report) string {
	fields := []struct {
		label string
		value string
	}{
		{"Reporter Name", r.ReporterName},
		{"Job Number", r.JobNumber},
		{"Department", r.Department},
		{"Position", r.Position},
		{"Description", r.Description},
		{"Date and Time", r.DateTime},
		{"Affected Person - Name", r.AffectedPersonName},
		{"Affected Person - Age", r.AffectedPersonAge},
		{"Affected Person - Sex", r.AffectedPersonSex},
		{"Affected Person - Nationality", r.AffectedPersonNationality},
		{"Severity Code", r.SeverityCode},
		{"Actions Taken by Initiating Department", r.ActionsTakenInitiating},
		{"Actions Taken by Responding Department", r.ActionsTakenResponding},
	}

	var b strings.Builder
	b.WriteString("Occurrence Variance Report (OVR) Submission:\n\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
	}
	return b.String()
}

// SendReport builds the notification message and hands it to the SMTP
// transport in a single synchronous round trip. No retries: a failure
// is returned to the caller and surfaced to the submitting user.
func (m *Mailer) SendReport(report models.Report) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", reportRecipient)
	msg.SetHeader("Subject", "OVR Submission")
	msg.SetBody("text/plain", ReportBody(report))

	return m.dialer.DialAndSend(msg)
}
