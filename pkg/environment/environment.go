package environment

import "strings"

// Environment names the deployment the process runs in.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Staging     Environment = "staging"
)

// Parse maps APP_ENV values, including the short forms "dev", "prod" and
// "stage", to an Environment. Anything unrecognised is Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) String() string {
	return string(e)
}

// IsProduction reports whether e is Production.
func (e Environment) IsProduction() bool {
	return e == Production
}

// IsDevelopment reports whether e is Development.
func (e Environment) IsDevelopment() bool {
	return e == Development
}
