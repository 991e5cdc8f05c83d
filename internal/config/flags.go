package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d SQLite database file path
//	-c/-config json file path with configs
//	-session-secret session cookie signing secret
//	-session-duration session lifetime (e.g., "12h", "30m")
//	-owner-setup-key one-time owner setup key
//	-company-url website printed in the PDF footer
//	-logo-file brand image path for the PDF footer
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var dbFile string
	var jsonConfigPath string
	var sessionSecret string
	var sessionDuration time.Duration
	var ownerSetupKey string
	var companyURL string
	var logoFile string
	var requestTimeout time.Duration

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&dbFile, "d", "", "SQLite database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&sessionSecret, "session-secret", "", "Session cookie signing secret")
	flag.DurationVar(&sessionDuration, "session-duration", 0, "Session lifetime (e.g., 12h, 30m)")
	flag.StringVar(&ownerSetupKey, "owner-setup-key", "", "One-time owner setup key")
	flag.StringVar(&companyURL, "company-url", "", "Company website for the PDF footer")
	flag.StringVar(&logoFile, "logo-file", "", "Brand image path for the PDF footer")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionSecret:   sessionSecret,
			SessionDuration: sessionDuration,
			OwnerSetupKey:   ownerSetupKey,
			CompanyURL:      companyURL,
			LogoFile:        logoFile,
		},
		Storage: Storage{
			DBFile: dbFile,
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
