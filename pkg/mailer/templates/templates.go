// Package templates renders outbound email bodies.
package templates

import (
	"bytes"
	"encoding/json"
	"fmt"
	htmpl "html/template"
	"strings"
	texttpl "text/template"
	"time"

	"github.com/oksasatya/blinkmaid-backend/config"
)

// Notification wraps a plain subject/body pair in the branded layout.
const Notification = "notification"

// EmailData defines the fields available to templates.
type EmailData struct {
	AppName        string `json:"AppName"`
	CompanyName    string `json:"CompanyName"`
	CompanyAddress string `json:"CompanyAddress"`
	LogoURL        string `json:"LogoURL"`
	SupportURL     string `json:"SupportURL"`
	RecipientEmail string `json:"RecipientEmail"`
	Subject        string `json:"Subject"`
	Body           string `json:"Body"`
}

func NewNotificationData(cfg *config.Config, to, subject, body string) map[string]any {
	d := EmailData{
		AppName:        cfg.AppName,
		CompanyName:    cfg.CompanyName,
		CompanyAddress: cfg.CompanyAddress,
		LogoURL:        cfg.LogoURL,
		SupportURL:     cfg.SupportURL,
		RecipientEmail: to,
		Subject:        subject,
		Body:           body,
	}
	return ToMap(d)
}

// ToMap converts EmailData to a map[string]any for EmailJob.Data
func ToMap(d EmailData) map[string]any {
	b, _ := json.Marshal(d)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

// defaultFn supports pipe usage: {{ .Value | default "Fallback" }}
func defaultFn(fallback any, value any) any {
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return fallback
	}
	if value == nil {
		return fallback
	}
	return value
}

func baseFuncs() map[string]any {
	return map[string]any{
		"year":    func() int { return time.Now().UTC().Year() },
		"default": defaultFn,
	}
}

type set struct {
	subject string
	text    string
	html    string
}

var sets = map[string]set{
	Notification: {
		subject: `{{ .Subject }}`,
		text: `{{ .Body }}

--
{{ .CompanyName | default .AppName }}{{ if .SupportURL }}
Need help? {{ .SupportURL }}{{ end }}
`,
		html: `<!DOCTYPE html>
<html><body style="font-family:Arial,sans-serif;background:#f6f7fb;padding:24px">
<table width="100%" cellpadding="0" cellspacing="0" style="max-width:560px;margin:auto;background:#fff;border-radius:8px;padding:24px">
{{ if .LogoURL }}<tr><td><img src="{{ .LogoURL }}" alt="{{ .AppName }}" height="40"></td></tr>{{ end }}
<tr><td><h2 style="margin:16px 0">{{ .Subject }}</h2></td></tr>
<tr><td style="font-size:15px;line-height:1.5">{{ .Body }}</td></tr>
<tr><td style="padding-top:24px;font-size:12px;color:#888">
&copy; {{ year }} {{ .CompanyName | default .AppName }}{{ if .CompanyAddress }}, {{ .CompanyAddress }}{{ end }}
{{ if .SupportURL }}<br><a href="{{ .SupportURL }}">Support</a>{{ end }}
</td></tr>
</table>
</body></html>
`,
	},
}

func execText(name, src string, data any) (string, error) {
	tpl, err := texttpl.New(name).Funcs(texttpl.FuncMap(baseFuncs())).Parse(src)
	if err != nil {
		return "", fmt.Errorf("parse text %q: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("exec %q: %w", name, err)
	}
	return buf.String(), nil
}

func execHTML(name, src string, data any) (string, error) {
	tpl, err := htmpl.New(name).Funcs(htmpl.FuncMap(baseFuncs())).Parse(src)
	if err != nil {
		return "", fmt.Errorf("parse html %q: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("exec %q: %w", name, err)
	}
	return buf.String(), nil
}

// Render produces subject, text and html for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	s, ok := sets[name]
	if !ok {
		return "", "", "", fmt.Errorf("unknown template %q", name)
	}
	if subject, err = execText(name+".subject", s.subject, data); err != nil {
		return "", "", "", err
	}
	if text, err = execText(name+".text", s.text, data); err != nil {
		return "", "", "", err
	}
	if html, err = execHTML(name+".html", s.html, data); err != nil {
		return "", "", "", err
	}
	return strings.TrimSpace(subject), text, html, nil
}
