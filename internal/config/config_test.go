package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// setEnv sets an environment variable, ignoring errors (for test setup)
func setEnv(key, value string) {
	_ = os.Setenv(key, value)
}

// unsetEnv unsets an environment variable, ignoring errors (for test cleanup)
func unsetEnv(key string) {
	_ = os.Unsetenv(key)
}

func TestLoad(t *testing.T) {
	// Save original env vars
	originalEnv := make(map[string]string)
	envVars := []string{
		"API_PORT", "DB_PATH", "LOG_LEVEL", "LOG_FORMAT",
		"CACHE_SIZE", "REALIGN_WINDOW", "DEFAULT_USER_ID",
	}
	for _, key := range envVars {
		originalEnv[key] = os.Getenv(key)
		unsetEnv(key)
	}
	defer func() {
		for key, value := range originalEnv {
			if value != "" {
				setEnv(key, value)
			} else {
				unsetEnv(key)
			}
		}
	}()

	tests := []struct {
		name        string
		setupEnv    func(*testing.T)
		wantErr     bool
		checkConfig func(*Config) bool
	}{
		{
			name:     "default values",
			setupEnv: func(t *testing.T) {},
			wantErr:  false,
			checkConfig: func(cfg *Config) bool {
				return cfg.APIPort == "8080" &&
					cfg.DBPath == "novels.db" &&
					cfg.LogLevel == slog.LevelInfo &&
					cfg.LogFormat == "text" &&
					cfg.CacheSize == 64 &&
					cfg.RealignWindow == 200 &&
					cfg.DefaultUserID == "local"
			},
		},
		{
			name: "custom values",
			setupEnv: func(t *testing.T) {
				setEnv("API_PORT", "9000")
				setEnv("DB_PATH", filepath.Join(t.TempDir(), "custom", "novels.db"))
				setEnv("LOG_LEVEL", "debug")
				setEnv("LOG_FORMAT", "JSON")
				setEnv("CACHE_SIZE", "8")
				setEnv("REALIGN_WINDOW", "500")
				setEnv("DEFAULT_USER_ID", "reader")
			},
			wantErr: false,
			checkConfig: func(cfg *Config) bool {
				return cfg.APIPort == "9000" &&
					filepath.Base(cfg.DBPath) == "novels.db" && // path will vary with temp dir
					cfg.LogLevel == slog.LevelDebug &&
					cfg.LogFormat == "json" &&
					cfg.CacheSize == 8 &&
					cfg.RealignWindow == 500 &&
					cfg.DefaultUserID == "reader"
			},
		},
		{
			name: "invalid CACHE_SIZE",
			setupEnv: func(t *testing.T) {
				setEnv("CACHE_SIZE", "many")
			},
			wantErr: true,
		},
		{
			name: "zero CACHE_SIZE",
			setupEnv: func(t *testing.T) {
				setEnv("CACHE_SIZE", "0")
			},
			wantErr: true,
		},
		{
			name: "negative REALIGN_WINDOW",
			setupEnv: func(t *testing.T) {
				setEnv("REALIGN_WINDOW", "-1")
			},
			wantErr: true,
		},
		{
			name: "invalid LOG_LEVEL",
			setupEnv: func(t *testing.T) {
				setEnv("LOG_LEVEL", "verbose")
			},
			wantErr: true,
		},
		{
			name: "invalid LOG_FORMAT",
			setupEnv: func(t *testing.T) {
				setEnv("LOG_FORMAT", "xml")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Change to a temp directory without .env file to avoid loading it
			tmpDir := t.TempDir()
			originalWd, _ := os.Getwd()
			_ = os.Chdir(tmpDir) // Ignore error - test will fail if this doesn't work
			defer func() {
				_ = os.Chdir(originalWd) // Ignore error in cleanup
			}()

			// Clean up env vars before each test
			for _, key := range envVars {
				unsetEnv(key)
			}
			// Restore original values after test
			defer func() {
				for key, value := range originalEnv {
					if value != "" {
						setEnv(key, value)
					} else {
						unsetEnv(key)
					}
				}
			}()

			tt.setupEnv(t)

			cfg, err := Load()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Load() expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("Load() unexpected error: %v", err)
				return
			}

			if cfg == nil {
				t.Fatal("Load() returned nil config")
			}

			if tt.checkConfig != nil && !tt.checkConfig(cfg) {
				t.Errorf("Load() config validation failed: %+v", cfg)
			}
		})
	}
}

func TestLoad_CreatesDataDirectory(t *testing.T) {
	originalValue := os.Getenv("DB_PATH")
	defer func() {
		if originalValue != "" {
			setEnv("DB_PATH", originalValue)
		} else {
			unsetEnv("DB_PATH")
		}
	}()

	// Use a temporary directory for testing
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test", "db.db")
	setEnv("DB_PATH", dbPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Check that directory was created
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Errorf("Load() should create data directory: %v", err)
	}

	if cfg.DBPath != dbPath {
		t.Errorf("Load() DBPath = %v, want %v", cfg.DBPath, dbPath)
	}
}

func TestGetEnv(t *testing.T) {
	originalValue := os.Getenv("TEST_ENV_VAR")
	defer func() {
		if originalValue != "" {
			setEnv("TEST_ENV_VAR", originalValue)
		} else {
			unsetEnv("TEST_ENV_VAR")
		}
	}()

	tests := []struct {
		name         string
		setupEnv     func()
		key          string
		defaultValue string
		want         string
	}{
		{
			name: "env var set",
			setupEnv: func() {
				setEnv("TEST_ENV_VAR", "set-value")
			},
			key:          "TEST_ENV_VAR",
			defaultValue: "default",
			want:         "set-value",
		},
		{
			name: "env var not set",
			setupEnv: func() {
				unsetEnv("TEST_ENV_VAR")
			},
			key:          "TEST_ENV_VAR",
			defaultValue: "default",
			want:         "default",
		},
		{
			name: "empty env var uses default",
			setupEnv: func() {
				setEnv("TEST_ENV_VAR", "")
			},
			key:          "TEST_ENV_VAR",
			defaultValue: "default",
			want:         "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupEnv()
			got := getEnv(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnv(%q, %q) = %q, want %q", tt.key, tt.defaultValue, got, tt.want)
			}
		})
	}
}
