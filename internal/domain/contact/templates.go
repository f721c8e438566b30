package contact

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

const (
	alertSubject    = "New Contact Form Submission"
	submittedLayout = "Monday, January 2, 2006 at 3:04 PM"
)

var acknowledgementTmpl = template.Must(template.New("acknowledgement").Parse(`<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background-color: #1e3a8a; color: white; padding: 20px; text-align: center; }
.content { padding: 30px; background-color: #f9fafb; }
.footer { padding: 20px; text-align: center; color: #666; font-size: 14px; }
</style>
</head>
<body>
<div class="container">
<div class="header"><h1>{{.Brand}}</h1></div>
<div class="content">
<p>Dear {{.Name}},</p>
<p>Thank you for reaching out to {{.Brand}}. We will be in touch with you within 3 working days.</p>
<p>Best,<br>{{.Brand}}</p>
</div>
<div class="footer"><p>&copy; {{.Year}} {{.Brand}}. All rights reserved.</p></div>
</div>
</body>
</html>
`))

var alertTmpl = template.Must(template.New("alert").Parse(`<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background-color: #1e3a8a; color: white; padding: 20px; }
.content { padding: 30px; background-color: #ffffff; }
.field { margin-bottom: 15px; }
.field-label { font-weight: bold; color: #1e3a8a; }
.field-value { margin-top: 5px; padding: 10px; background-color: #f3f4f6; border-left: 3px solid #ea580c; }
</style>
</head>
<body>
<div class="container">
<div class="header"><h2>New Contact Form Submission</h2></div>
<div class="content">
<p>A new contact form has been submitted:</p>
{{range .Fields}}<div class="field">
<div class="field-label">{{.Label}}:</div>
<div class="field-value">{{.Value}}</div>
</div>
{{end}}<p>Submitted on: {{.SubmittedAt}}</p>
</div>
</div>
</body>
</html>
`))

type alertField struct {
	Label string
	Value string
}

func AcknowledgementSubject(brand string) string {
	return "Thank you for reaching out - " + brand
}

func RenderAcknowledgement(s Submission, brand string, now time.Time) (Message, error) {
	var buf bytes.Buffer
	err := acknowledgementTmpl.Execute(&buf, map[string]any{
		"Brand": brand,
		"Name":  s.Name,
		"Year":  now.Year(),
	})
	if err != nil {
		return Message{}, fmt.Errorf("contact: render acknowledgement: %w", err)
	}
	return Message{Subject: AcknowledgementSubject(brand), Body: buf.String()}, nil
}

func RenderAlert(s Submission, submittedAt time.Time) (Message, error) {
	var buf bytes.Buffer
	err := alertTmpl.Execute(&buf, map[string]any{
		"Fields": []alertField{
			{Label: "Company Name", Value: s.CompanyName},
			{Label: "Name", Value: s.Name},
			{Label: "Phone Number", Value: s.PhoneNumber},
			{Label: "Email", Value: s.Email},
		},
		"SubmittedAt": submittedAt.Format(submittedLayout),
	})
	if err != nil {
		return Message{}, fmt.Errorf("contact: render alert: %w", err)
	}
	return Message{Subject: alertSubject, Body: buf.String()}, nil
}
