package config

import (
	"crypto/rand"
	"log"
	"os"
	"strconv"
)

// Config carries all environment-sourced settings. It is built once in
// main and handed to the pieces that need it; nothing reads the
// environment after startup.
type Config struct {
	Port         string
	DatabasePath string

	// SessionSecret signs the session cookies. When SESSION_SECRET is
	// unset a fresh random secret is generated, which invalidates all
	// sessions on every restart.
	SessionSecret []byte

	MailServer   string
	MailPort     int
	MailUseTLS   bool
	MailUseSSL   bool
	MailUsername string
	MailPassword string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "site.db"),
		SessionSecret: sessionSecret(),
		MailServer:    getEnv("MAIL_SERVER", "smtp.gmail.com"),
		MailPort:      getEnvInt("MAIL_PORT", 587),
		MailUseTLS:    getEnvBool("MAIL_USE_TLS", true),
		MailUseSSL:    getEnvBool("MAIL_USE_SSL", false),
		MailUsername:  os.Getenv("MAIL_USERNAME"),
		MailPassword:  os.Getenv("MAIL_PASSWORD"),
	}
}

func sessionSecret() []byte {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return []byte(s)
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		log.Fatal("Failed to generate session secret:", err)
	}
	return secret
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v == "True" || v == "true" || v == "1"
}
