package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appName        = "nerdfonts"
	configFileName = "config.yaml"

	EnvPrefix  = "NERDFONTS_PREFIX"
	EnvConfig  = "NERDFONTS_CONFIG"
	EnvBaseURL = "NERDFONTS_BASE_URL"
)

// DefaultPrefix returns $HOME/.local/share/nerdfonts, or .nerdfonts under the
// working directory when HOME is not set
func DefaultPrefix() (string, error) {
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".local", "share", appName), nil
	}
	return filepath.Abs("." + appName)
}

// ResolvePrefix picks the flag value, then $NERDFONTS_PREFIX, then DefaultPrefix,
// and makes the result absolute
func ResolvePrefix(flagValue string) (string, error) {
	prefix := flagValue
	if prefix == "" {
		prefix = os.Getenv(EnvPrefix)
	}
	if prefix == "" {
		return DefaultPrefix()
	}
	return filepath.Abs(prefix)
}

// ConfigFileCandidates lists the places searched for config.yaml, in order
func ConfigFileCandidates(prefix string) []string {
	return []string{
		filepath.Join(prefix, configFileName),
		filepath.Join(xdg.ConfigHome, appName, configFileName),
	}
}

// FindConfigFile returns the first existing regular file among candidates,
// or "" if there is none
func FindConfigFile(candidates []string) string {
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate
		}
	}
	return ""
}
