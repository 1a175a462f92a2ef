package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// Contact holds sanitized contact form values. MessageHTML is already
// HTML-escaped; every other field is escaped on output.
type Contact struct {
	Name        string
	Email       string
	Phone       string
	Subject     string
	MessageHTML string
	Company     Company
}

// ContactNotification is the HTML body sent to the site owner.
func ContactNotification(c Contact) templ.Component {
	return Layout(c.Company, "Contact Form",
		templ.Join(
			Details(
				Field("Name", c.Name),
				LinkField("Email", "mailto:", c.Email),
				LinkField("Phone", "tel:", c.Phone),
				Field("Subject", c.Subject),
			),
			MessageBlock("Message", c.MessageHTML),
		),
		ReplyFooter("contact form", c.Name),
	)
}

// ContactText is the plain-text alternative of ContactNotification.
func ContactText(c Contact) string {
	company := c.Company.orDefault()

	var b strings.Builder
	b.WriteString("New Contact Form Submission\n\n")
	b.WriteString(company.Tagline + "\n\n")
	fmt.Fprintf(&b, "Name: %s\n", c.Name)
	fmt.Fprintf(&b, "Email: %s\n", c.Email)
	if c.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", c.Phone)
	}
	if c.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", c.Subject)
	}
	fmt.Fprintf(&b, "\nMessage:\n%s\n", c.MessageHTML)
	writeTextFooter(&b, "contact form", c.Name, company)
	return b.String()
}

func writeTextFooter(b *strings.Builder, source, name string, company Company) {
	b.WriteString("\n---\n")
	fmt.Fprintf(b, "This email was sent from the %s on your website.\n", source)
	fmt.Fprintf(b, "Reply directly to this email to respond to %s.\n\n", name)
	b.WriteString("Company Contact:\n")
	fmt.Fprintf(b, "Phone: %s\n", company.Phone)
	fmt.Fprintf(b, "Email: %s\n", company.Email)
}
