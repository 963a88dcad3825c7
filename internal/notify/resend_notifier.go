package notify

import (
	"bytes"
	"html/template"

	"github.com/mfeehan/vitals/pkg/vitals"
	"github.com/resend/resend-go/v2"
)

type ResendNotifier struct {
	ApiKey string
	From   string
}

const waterTemplate = `
<p>Time for a glass of water. You are at {{.Glasses}} of {{.Goal}} glasses today.</p>
`

const digestTemplate = `
<p>Your wellness check-in:</p>
<ul>
{{range .Advisories}}
  <li><strong>{{.Category}}</strong>: {{.Text}}</li>
{{end}}
</ul>
`

func (r *ResendNotifier) RemindWater(to []string, glasses, goal int) error {
	body, err := render(waterTemplate, struct {
		Glasses int
		Goal    int
	}{glasses, goal})
	if err != nil {
		return err
	}
	return r.send(to, "Hydration reminder", body)
}

func (r *ResendNotifier) SendDigest(to []string, advisories []vitals.Advisory) error {
	body, err := render(digestTemplate, struct {
		Advisories []vitals.Advisory
	}{advisories})
	if err != nil {
		return err
	}
	return r.send(to, "Your wellness check-in", body)
}

func render(tmpl string, data any) (string, error) {
	t, err := template.New("email").Parse(tmpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *ResendNotifier) send(to []string, subject, html string) error {
	client := resend.NewClient(r.ApiKey)
	params := &resend.SendEmailRequest{
		From:    r.From,
		To:      to,
		Subject: subject,
		Html:    html,
	}
	_, err := client.Emails.Send(params)
	return err
}

var _ Notifier = (*ResendNotifier)(nil)
