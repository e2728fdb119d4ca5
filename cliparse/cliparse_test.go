// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("IP_HASH_SALT", "test-salt")

	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.Environment != EnvProduction {
		t.Errorf("expected production, got %s", cfg.Environment)
	}
	if !cfg.SecureCookies {
		t.Error("expected secure cookies in production")
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-env-file", "", "-p", "8080", "-d", "file:test.db", "-ip-salt", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default sqlite, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_SecureCookies(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want bool
	}{
		{"development default", []string{"-env", "development"}, true},
		{"production default", []string{"-env", "production"}, true},
		{"test default", []string{"-env", "test"}, false},
		{"explicit off", []string{"-env", "production", "-secure-cookies", "false"}, false},
		{"explicit on", []string{"-env", "test", "-secure-cookies", "true"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("IP_HASH_SALT", "salt")
			args := append([]string{"-env-file", ""}, tc.args...)

			cfg, err := ParseFlags(args)
			if err != nil {
				t.Fatal(err)
			}
			if cfg.SecureCookies != tc.want {
				t.Errorf("SecureCookies = %v, want %v", cfg.SecureCookies, tc.want)
			}
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"missing salt", []string{}, nil},
		{"postgres without url", []string{"-t", "postgres", "-ip-salt", "s"}, nil},
		{"unknown database type", []string{"-t", "mysql", "-ip-salt", "s"}, nil},
		{"unknown environment", []string{"-env", "staging", "-ip-salt", "s"}, nil},
		{"bad secure flag", []string{"-secure-cookies", "maybe", "-ip-salt", "s"}, nil},
		{"bad port env", []string{"-ip-salt", "s"}, map[string]string{"PORT": "abc"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("IP_HASH_SALT", "")
			t.Setenv("DATABASE_URL", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			args := append([]string{"-env-file", ""}, tc.args...)

			if _, err := ParseFlags(args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseFlags_AllowedOrigins(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		env  string
		want []string
	}{
		{"unset", nil, "", nil},
		{"from env", nil, "https://app.example.com, http://localhost:5173", []string{"https://app.example.com", "http://localhost:5173"}},
		{"flag overrides env", []string{"-origins", "https://a.example.com"}, "https://b.example.com", []string{"https://a.example.com"}},
		{"blank entries dropped", []string{"-origins", " ,https://a.example.com,, "}, "", []string{"https://a.example.com"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("IP_HASH_SALT", "salt")
			t.Setenv("ALLOWED_ORIGINS", tc.env)
			args := append([]string{"-env-file", ""}, tc.args...)

			cfg, err := ParseFlags(args)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(cfg.AllowedOrigins, tc.want) {
				t.Errorf("AllowedOrigins = %q, want %q", cfg.AllowedOrigins, tc.want)
			}
		})
	}
}

func TestParseFlags_ReadOnlyProfiles(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		env  string
		want bool
	}{
		{"unset", nil, "", false},
		{"from env", nil, "true", true},
		{"flag overrides env", []string{"-read-only-profiles", "false"}, "true", false},
		{"flag on", []string{"-read-only-profiles", "1"}, "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("IP_HASH_SALT", "salt")
			t.Setenv("READ_ONLY_PROFILES", tc.env)
			args := append([]string{"-env-file", ""}, tc.args...)

			cfg, err := ParseFlags(args)
			if err != nil {
				t.Fatal(err)
			}
			if cfg.ReadOnlyProfiles != tc.want {
				t.Errorf("ReadOnlyProfiles = %v, want %v", cfg.ReadOnlyProfiles, tc.want)
			}
		})
	}
}

func TestParseFlags_InvalidReadOnlyProfiles(t *testing.T) {
	t.Setenv("IP_HASH_SALT", "salt")
	t.Setenv("READ_ONLY_PROFILES", "sometimes")

	if _, err := ParseFlags([]string{"-env-file", ""}); err == nil {
		t.Error("Expected error for invalid READ_ONLY_PROFILES")
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "IP_HASH_SALT=from-file\nFONT_DIR=/srv/fonts\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("IP_HASH_SALT", "")
	os.Unsetenv("IP_HASH_SALT")
	t.Setenv("FONT_DIR", "")
	os.Unsetenv("FONT_DIR")

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.IPHashSalt != "from-file" {
		t.Errorf("expected salt from .env, got %q", cfg.IPHashSalt)
	}
	if cfg.FontDir != "/srv/fonts" {
		t.Errorf("expected font dir from .env, got %q", cfg.FontDir)
	}
}

func TestParseFlags_MissingEnvFileIgnored(t *testing.T) {
	t.Setenv("IP_HASH_SALT", "salt")

	_, err := ParseFlags([]string{"-env-file", filepath.Join(t.TempDir(), "missing.env")})
	if err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}
