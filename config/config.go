package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

type Config struct {
	AppName           string
	InitialDir        string
	EnableFileLogging bool
	LogLevel          string
	Hotkey            string
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or executable directory
	envPaths := []string{".env"}

	// If running as executable, also try the executable's directory
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		envPaths = append(envPaths, filepath.Join(execDir, ".env"))
	}

	// Try to load .env file (ignore errors if file doesn't exist)
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			godotenv.Load(envPath)
			break
		}
	}

	cfg := &Config{
		AppName:           os.Getenv("APP_NAME"),
		InitialDir:        getEnvWithDefault("INITIAL_DIR", defaultInitialDir()),
		EnableFileLogging: strings.ToLower(os.Getenv("ENABLE_FILE_LOGGING")) == "true",
		LogLevel:          getEnvWithDefault("LOG_LEVEL", "info"),
		Hotkey:            os.Getenv("HOTKEY"),
	}

	return cfg, nil
}

// defaultInitialDir picks where file pickers start when nothing is
// configured: the platform Documents directory, falling back to home.
func defaultInitialDir() string {
	if d := xdg.UserDirs.Documents; d != "" {
		return d
	}
	return xdg.Home
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
