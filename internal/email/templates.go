package email

import (
	"bytes"
	"fmt"
	"html/template"
)

const confirmationTemplate = `<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #1f2937; margin: 0; padding: 24px;">
    <h2 style="margin-top: 0;">Thank you for your submission!</h2>
    <p>Dear {{.FirstName}},</p>
    <p>We have received your information. Our team will review your submission and reach out to you shortly.</p>
  </body>
</html>`

const alertTemplate = `<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #1f2937; margin: 0; padding: 24px;">
    <h2 style="margin-top: 0;">New lead submitted</h2>
    <p>Lead {{.FirstName}} {{.LastName}} ({{.Email}}) has submitted information.</p>
  </body>
</html>`

var (
	confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationTemplate))
	alertTmpl        = template.Must(template.New("alert").Parse(alertTemplate))
)

type confirmationEmailData struct {
	FirstName string
}

type alertEmailData struct {
	FirstName string
	LastName  string
	Email     string
}

func renderEmailTemplate(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
