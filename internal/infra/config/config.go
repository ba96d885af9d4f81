// internal/infra/config/config.go
package config

import "os"

// Config holds the environment-derived settings for the whole app.
type Config struct {
	Port                     string
	FirestoreProjectID       string
	FirebaseProjectID        string
	GCPCreds                 string
	FirestoreCredentialsFile string

	// DataDir is where the durable local store (cart blob, theme) lives.
	DataDir string

	// ProductImageBucket backs bare-object-path catalog image refs.
	ProductImageBucket string

	// DatabaseURL enables the PostgreSQL order archive when set.
	DatabaseURL string

	// SendGrid: the key can come straight from env or from Secret Manager
	// (SENDGRID_SECRET_NAME wins at infra init when both are set).
	SendGridAPIKey     string
	SendGridSecretName string
	OrderMailFrom      string
	OrderMailTo        string
}

// Load reads the environment into a Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "")

	cfg := &Config{
		Port:                     getenvDefault("PORT", "8080"),
		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),

		DataDir: getenvDefault("DATA_DIR", ".boutique"),

		ProductImageBucket: os.Getenv("PRODUCT_IMAGE_BUCKET"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		SendGridSecretName: os.Getenv("SENDGRID_SECRET_NAME"),
		OrderMailFrom:      os.Getenv("ORDER_MAIL_FROM"),
		OrderMailTo:        os.Getenv("ORDER_MAIL_TO"),
	}

	return cfg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
