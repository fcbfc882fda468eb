package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Env carries all runtime configuration. Every field maps to one
// environment variable; a .env file is honored when present.
type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	// Staff authentication. StaffPasswordHash is a bcrypt hash; when it
	// is empty the login endpoint rejects everything.
	JWTSecret         string
	StaffUsername     string
	StaffPasswordHash string

	// Calendar feed tokens. The public token is optional (feed is open
	// when unset); the staff feed refuses to serve without its token.
	FeedToken      string
	StaffFeedToken string

	// Mail via Microsoft Graph. Mail is disabled unless tenant, client
	// id/secret and the from address are all set.
	MailTenantID     string
	MailClientID     string
	MailClientSecret string
	MailFrom         string
	StaffEmail       string

	BarName string
}

// LoadEnv reads configuration from the environment (and .env if present).
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not read .env: %v", err)
	}

	env := Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getenv("DB_USER", "root"),
		DBPass: strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost: getenv("DB_HOST", "127.0.0.1:3306"),
		DBName: getenv("DB_NAME", "harrylist"),

		JWTSecret:         strings.TrimSpace(os.Getenv("JWT_SECRET")),
		StaffUsername:     getenv("STAFF_USERNAME", "staff"),
		StaffPasswordHash: strings.TrimSpace(os.Getenv("STAFF_PASSWORD_HASH")),

		FeedToken:      strings.TrimSpace(os.Getenv("CALENDAR_FEED_TOKEN")),
		StaffFeedToken: strings.TrimSpace(os.Getenv("CALENDAR_STAFF_FEED_TOKEN")),

		MailTenantID:     strings.TrimSpace(os.Getenv("MAIL_GRAPH_TENANT_ID")),
		MailClientID:     strings.TrimSpace(os.Getenv("MAIL_GRAPH_CLIENT_ID")),
		MailClientSecret: strings.TrimSpace(os.Getenv("MAIL_GRAPH_CLIENT_SECRET")),
		MailFrom:         strings.TrimSpace(os.Getenv("MAIL_FROM")),
		StaffEmail:       strings.TrimSpace(os.Getenv("MAIL_STAFF")),

		BarName: getenv("BAR_NAME", "Hubble and Meteor Community Cafes"),
	}

	if env.JWTSecret == "" {
		env.JWTSecret = randomSecret()
		log.Println("warning: JWT_SECRET not set, staff sessions will not survive restarts")
	}
	return env
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("could not generate fallback JWT secret: %v", err)
	}
	return hex.EncodeToString(buf)
}

// MailEnabled reports whether the notification dispatcher is configured.
func (e Env) MailEnabled() bool {
	return e.MailTenantID != "" && e.MailClientID != "" && e.MailClientSecret != "" && e.MailFrom != ""
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
