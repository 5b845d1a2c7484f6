package config

import "os"

type Environment struct {
	IsDevelopment bool
	Domain        string
	CookieSecure  bool
	AppBaseURL    string
}

var Env Environment

func init() {
	// If no cookie domain is set, we're in development
	domain := os.Getenv("COOKIE_DOMAIN")
	isDev := domain == ""
	if isDev {
		domain = "localhost"
	}

	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	Env = Environment{
		IsDevelopment: isDev,
		Domain:        domain,
		CookieSecure:  !isDev,
		AppBaseURL:    baseURL,
	}
}
