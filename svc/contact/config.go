package contact

import "github.com/firstengineering/website/pkg/email/templates"

// DefaultFromEmail is used when RESEND_FROM_EMAIL is unset.
const DefaultFromEmail = "Contact Form <noreply@31stengineering.co.uk>"

// Config holds the addresses and branding used for notifications.
// ToEmail has no default; a missing value fails each request with a
// configuration error rather than failing startup.
type Config struct {
	FromEmail           string `env:"RESEND_FROM_EMAIL" envDefault:"Contact Form <noreply@31stengineering.co.uk>"`
	ToEmail             string `env:"RESEND_TO_EMAIL"`
	ContactFromName     string `env:"CONTACT_FROM_NAME" envDefault:"Contact Form"`
	ApplicationFromName string `env:"APPLICATION_FROM_NAME" envDefault:"Careers"`

	CompanyName    string `env:"COMPANY_NAME" envDefault:"3.1ST Engineering"`
	CompanyTagline string `env:"COMPANY_TAGLINE" envDefault:"Construction Company - Building Excellence Since 2011"`
	CompanyPhone   string `env:"COMPANY_PHONE" envDefault:"07300805194"`
	CompanyEmail   string `env:"COMPANY_EMAIL" envDefault:"3.1stengineeringltd@gmail.com"`
}

func (c Config) company() templates.Company {
	return templates.Company{
		Name:    c.CompanyName,
		Tagline: c.CompanyTagline,
		Phone:   c.CompanyPhone,
		Email:   c.CompanyEmail,
	}
}
