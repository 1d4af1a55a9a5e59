package config

import (
	"flag"
	"os"
	"strings"

	"github.com/spf13/viper"

	apperrors "github.com/agbru/fibmodes/internal/errors"
)

// fileKey ties a config file key to the flags that take precedence over it.
type fileKey struct {
	key   string
	flags []string
}

var fileKeys = []fileKey{
	{"n", []string{"n"}},
	{"mode", []string{"mode"}},
	{"timeout", []string{"timeout"}},
	{"quiet", []string{"quiet", "q"}},
	{"output", []string{"output", "o"}},
	{"tui", []string{"tui"}},
	{"metrics_addr", []string{"metrics-addr"}},
	{"log_level", []string{"log-level"}},
	{"no_color", []string{"no-color"}},
	{"theme", []string{"theme"}},
}

// resolveConfigFile returns the config file path from --config, falling back
// to FIBMODES_CONFIG.
func resolveConfigFile(flagValue string, fs *flag.FlagSet) string {
	if isFlagSet(fs, "config") {
		return flagValue
	}
	return os.Getenv(EnvPrefix + "CONFIG")
}

// loadFile reads a config file into a private viper instance.
// The format is taken from the file extension.
func loadFile(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, apperrors.WrapError(err, "reading config file %s", path)
	}
	return v, nil
}

// applyFileOverrides copies every key present in the file onto config unless
// the matching flag was set on the command line. Environment overrides run
// afterwards and win over the file.
func applyFileOverrides(config *AppConfig, path string, fs *flag.FlagSet) error {
	v, err := loadFile(path)
	if err != nil {
		return err
	}

	// viper decodes weakly, which would wrap a negative n into a huge
	// uint64. Read it as text first so negatives are rejected.
	if v.IsSet("n") {
		if _, err := parseTermCount("n", v.GetString("n")); err != nil {
			return err
		}
	}

	var fromFile AppConfig
	if err := v.Unmarshal(&fromFile); err != nil {
		return apperrors.WrapError(err, "decoding config file %s", path)
	}

	for _, k := range fileKeys {
		if !v.IsSet(k.key) || isFlagSetAny(fs, k.flags...) {
			continue
		}
		copyField(config, &fromFile, k.key)
	}
	return nil
}

func copyField(dst, src *AppConfig, key string) {
	switch key {
	case "n":
		dst.N = src.N
	case "mode":
		dst.Mode = strings.ToLower(src.Mode)
	case "timeout":
		dst.Timeout = src.Timeout
	case "quiet":
		dst.Quiet = src.Quiet
	case "output":
		dst.OutputFile = src.OutputFile
	case "tui":
		dst.TUI = src.TUI
	case "metrics_addr":
		dst.MetricsAddr = src.MetricsAddr
	case "log_level":
		dst.LogLevel = src.LogLevel
	case "no_color":
		dst.NoColor = src.NoColor
	case "theme":
		dst.Theme = src.Theme
	}
}
