package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// Application holds sanitized careers form values. MessageHTML is already
// HTML-escaped and may be empty.
type Application struct {
	Name        string
	Email       string
	Phone       string
	Position    string
	Experience  string
	MessageHTML string
	Resume      string // attached file name, empty when none
	Company     Company
}

// ApplicationNotification is the HTML body sent for a job application.
func ApplicationNotification(a Application) templ.Component {
	return Layout(a.Company, "Job Application",
		templ.Join(
			Details(
				Field("Position", a.Position),
				Field("Name", a.Name),
				LinkField("Email", "mailto:", a.Email),
				LinkField("Phone", "tel:", a.Phone),
				Field("Experience", a.Experience),
				Field("Resume", a.Resume),
			),
			MessageBlock("Cover Letter", a.MessageHTML),
		),
		ReplyFooter("careers form", a.Name),
	)
}

// ApplicationText is the plain-text alternative of ApplicationNotification.
func ApplicationText(a Application) string {
	company := a.Company.orDefault()

	var b strings.Builder
	b.WriteString("New Job Application\n\n")
	b.WriteString(company.Tagline + "\n\n")
	fmt.Fprintf(&b, "Position: %s\n", a.Position)
	fmt.Fprintf(&b, "Name: %s\n", a.Name)
	fmt.Fprintf(&b, "Email: %s\n", a.Email)
	if a.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", a.Phone)
	}
	if a.Experience != "" {
		fmt.Fprintf(&b, "Experience: %s\n", a.Experience)
	}
	if a.Resume != "" {
		fmt.Fprintf(&b, "Resume: %s (attached)\n", a.Resume)
	}
	if a.MessageHTML != "" {
		fmt.Fprintf(&b, "\nCover Letter:\n%s\n", a.MessageHTML)
	}
	writeTextFooter(&b, "careers form", a.Name, company)
	return b.String()
}
