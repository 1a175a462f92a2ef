package templates

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

// Company identifies the site owner in notification headers and footers.
type Company struct {
	Name    string
	Tagline string
	Phone   string
	Email   string
}

// DefaultCompany is used when a notification carries no company details.
var DefaultCompany = Company{
	Name:    "3.1ST Engineering",
	Tagline: "Construction Company - Building Excellence Since 2011",
	Phone:   "07300805194",
	Email:   "3.1stengineeringltd@gmail.com",
}

func (c Company) orDefault() Company {
	if c.Name == "" {
		return DefaultCompany
	}
	return c
}

const (
	labelStyle  = `color: #374151; font-size: 13px; text-transform: uppercase; letter-spacing: 0.5px; display: block; margin-bottom: 4px;`
	valueStyle  = `color: #1f2937; font-size: 15px; font-weight: 500;`
	linkStyle   = `color: #2563eb; font-size: 15px; text-decoration: none; font-weight: 500;`
	accentColor = `#2563eb`
)

// Render renders a notification body to a string.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	buf.Grow(4 << 10)
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// writer collects the first write error so components read top to bottom.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

func (w *writer) component(ctx context.Context, c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(ctx, w.w)
}

// Layout wraps body in the notification shell: a branded header with
// subtitle, the body, and a footer with the company contact line.
func Layout(company Company, subtitle string, body templ.Component, footer templ.Component) templ.Component {
	company = company.orDefault()
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<!DOCTYPE html><html><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>`)
		w.raw(`<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f5f5f5;">`)
		w.raw(`<table width="100%" cellpadding="0" cellspacing="0" style="background-color: #f5f5f5; padding: 40px 20px;"><tr><td align="center">`)
		w.raw(`<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 12px; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1); overflow: hidden;">`)
		w.raw(`<tr><td style="background: linear-gradient(135deg, #2563eb 0%, #1d4ed8 100%); padding: 30px; text-align: center;">`)
		w.raw(`<h1 style="margin: 0; color: #ffffff; font-size: 24px; font-weight: 700; letter-spacing: -0.5px;">`)
		w.text(company.Name)
		w.raw(`</h1><p style="margin: 8px 0 0 0; color: #ffffff; font-size: 14px; font-weight: 400; opacity: 0.9;">`)
		w.text(subtitle)
		w.raw(`</p></td></tr><tr><td style="padding: 40px 30px;">`)
		w.component(ctx, body)
		w.raw(`<div style="padding-top: 25px; border-top: 1px solid #e5e7eb; text-align: center;">`)
		w.component(ctx, footer)
		w.raw(`<p style="margin: 15px 0 0 0; color: #9ca3af; font-size: 11px;">Phone: `)
		w.text(company.Phone)
		w.raw(` | Email: `)
		w.text(company.Email)
		w.raw(`</p></div></td></tr></table></td></tr></table></body></html>`)
		return w.err
	})
}

// Field renders one labelled value. Empty values render nothing.
func Field(label, value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		if value == "" {
			return nil
		}
		w := &writer{w: out}
		w.raw(`<tr><td style="padding: 8px 0;"><strong style="` + labelStyle + `">`)
		w.text(label)
		w.raw(`</strong><span style="` + valueStyle + `">`)
		w.text(value)
		w.raw(`</span></td></tr>`)
		return w.err
	})
}

// LinkField renders a labelled value wrapped in a link with the given
// scheme ("mailto:" or "tel:"). Empty values render nothing.
func LinkField(label, scheme, value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		if value == "" {
			return nil
		}
		w := &writer{w: out}
		w.raw(`<tr><td style="padding: 8px 0;"><strong style="` + labelStyle + `">`)
		w.text(label)
		w.raw(`</strong><a href="`)
		w.text(scheme + value)
		w.raw(`" style="` + linkStyle + `">`)
		w.text(value)
		w.raw(`</a></td></tr>`)
		return w.err
	})
}

// Details renders fields inside the grey details card.
func Details(fields ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<div style="background-color: #f9fafb; border-radius: 8px; padding: 25px; margin-bottom: 25px;"><table width="100%" cellpadding="0" cellspacing="0">`)
		for _, f := range fields {
			w.component(ctx, f)
		}
		w.raw(`</table></div>`)
		return w.err
	})
}

// MessageBlock renders a titled block around html, which must already be
// escaped. Empty html renders nothing.
func MessageBlock(title, html string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		if html == "" {
			return nil
		}
		w := &writer{w: out}
		w.raw(`<div style="margin-bottom: 30px;"><h3 style="margin: 0 0 15px 0; color: #1f2937; font-size: 16px; font-weight: 600; text-transform: uppercase; letter-spacing: 0.5px;">`)
		w.text(title)
		w.raw(`</h3><div style="background-color: #ffffff; border: 1px solid #e5e7eb; border-left: 4px solid ` + accentColor + `; border-radius: 6px; padding: 20px;">`)
		w.raw(`<p style="margin: 0; color: #374151; font-size: 15px; line-height: 1.7; white-space: pre-wrap;">`)
		w.raw(html)
		w.raw(`</p></div></div>`)
		return w.err
	})
}

// ReplyFooter tells the recipient where the message came from and who a
// reply reaches.
func ReplyFooter(source, name string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<p style="margin: 0 0 8px 0; color: #6b7280; font-size: 12px; line-height: 1.6;">This email was sent from the `)
		w.text(source)
		w.raw(` on your website.<br>Reply directly to this email to respond to <strong style="color: #1f2937;">`)
		w.text(name)
		w.raw(`</strong>.</p>`)
		return w.err
	})
}
