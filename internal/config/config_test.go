package config

import (
	"strings"
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "5001" {
		t.Errorf("expected default port 5001, got %q", cfg.Port)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("expected postgres driver, got %q", cfg.Database.Driver)
	}
	if cfg.Auth.TokenTTL != 7*24*time.Hour {
		t.Errorf("expected 7 day token TTL, got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.JWTSecret == "" {
		t.Error("expected a development JWT secret outside production")
	}
	if cfg.RateLimit.Max != 100 || cfg.RateLimit.Window != 15*time.Minute {
		t.Errorf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
	if cfg.Uploads.MaxFileSize != 5*1024*1024 {
		t.Errorf("expected 5MB upload limit, got %d", cfg.Uploads.MaxFileSize)
	}
	if cfg.Email.Enabled() {
		t.Error("email should be disabled without EMAIL_HOST")
	}
	if cfg.Gemini.Enabled() {
		t.Error("gemini should be disabled without credentials")
	}
	if cfg.Auth.AllowOpenAdminSignup {
		t.Error("open admin signup must default to false")
	}
	if cfg.RateLimit.TrustedProxies != 0 {
		t.Errorf("expected no trusted proxies by default, got %d", cfg.RateLimit.TrustedProxies)
	}
}

func TestFromEnv_ProductionRequiresSecret(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{"APP_ENV": "production"}))
	if err == nil {
		t.Fatal("expected error when JWT_SECRET is missing in production")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Errorf("error should mention JWT_SECRET, got %v", err)
	}
}

func TestFromEnv_MongoURL(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"DATABASE_URL":   "mongodb://localhost:27017",
		"MONGO_DATABASE": "site",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Driver != DriverMongo {
		t.Errorf("expected mongo driver, got %q", cfg.Database.Driver)
	}
	if cfg.Database.MongoDatabase != "site" {
		t.Errorf("expected MONGO_DATABASE=site, got %q", cfg.Database.MongoDatabase)
	}
}

func TestFromEnv_UnsupportedScheme(t *testing.T) {
	if _, err := FromEnv(envMap(map[string]string{"DATABASE_URL": "mysql://x"})); err == nil {
		t.Error("expected error for unsupported DATABASE_URL scheme")
	}
}

func TestFromEnv_InvalidNumbers(t *testing.T) {
	cases := map[string]string{
		"EMAIL_PORT":          "abc",
		"MAX_FILE_SIZE":       "big",
		"RATE_LIMIT_MAX":      "many",
		"RATE_LIMIT_WINDOW":   "soon",
		"TOKEN_TTL":           "forever",
		"TRUSTED_PROXY_COUNT": "one",
	}
	for key, val := range cases {
		if _, err := FromEnv(envMap(map[string]string{key: val})); err == nil {
			t.Errorf("%s=%q: expected error", key, val)
		}
	}
}

func TestFromEnv_EmailDefaultsToUser(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"EMAIL_HOST": "smtp.example.com",
		"EMAIL_USER": "hello@example.com",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Email.From != "hello@example.com" || cfg.Email.Operator != "hello@example.com" {
		t.Errorf("expected From/Operator to default to EMAIL_USER, got %+v", cfg.Email)
	}
	if !cfg.Email.Enabled() {
		t.Error("expected email enabled")
	}
}

func TestFromEnv_PublicURLTrimmed(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{"PUBLIC_URL": "https://api.example.com/"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PublicURL != "https://api.example.com" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.PublicURL)
	}
}

func TestFromEnv_TrustedProxies(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{"TRUSTED_PROXY_COUNT": "2"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RateLimit.TrustedProxies != 2 {
		t.Errorf("expected 2 trusted proxies, got %d", cfg.RateLimit.TrustedProxies)
	}
	if _, err := FromEnv(envMap(map[string]string{"TRUSTED_PROXY_COUNT": "-1"})); err == nil {
		t.Error("expected error for negative TRUSTED_PROXY_COUNT")
	}
}
