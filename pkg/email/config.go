package email

// Provider names an outbound delivery backend.
type Provider string

const (
	ProviderResend   Provider = "resend"
	ProviderPostmark Provider = "postmark"
	ProviderDev      Provider = "dev"
)

// Config holds email service configuration.
// Only the credentials of the selected provider are required.
// SendRPS bounds outbound calls per second across the process; 0 disables throttling.
type Config struct {
	Provider             Provider `env:"MAIL_PROVIDER" envDefault:"resend"`
	ResendAPIKey         string   `env:"RESEND_API_KEY"`
	PostmarkServerToken  string   `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string   `env:"POSTMARK_ACCOUNT_TOKEN"`
	DevDir               string   `env:"MAIL_DEV_DIR" envDefault:"./tmp/emails"`
	SendRPS              float64  `env:"MAIL_SEND_RPS" envDefault:"2"`
	SendBurst            int      `env:"MAIL_SEND_BURST" envDefault:"5"`
}
