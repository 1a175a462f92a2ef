// Package environment names the deployment environments the website runs in
// and parses the APP_ENV value into one of them.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//		// JSON logs, no dev mail sender
//	}
package environment
