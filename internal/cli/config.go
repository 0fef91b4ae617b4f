package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ralt/rpmupdates/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	KeyConfig       = "config"
	KeyVerbose      = "verbose"
	KeyRPM          = "rpm"
	KeyFeed         = "feed"
	KeyBugs         = "bugs"
	KeyNoSecurity   = "no-security"
	KeyAll          = "all"
	KeyUpgradesOnly = "upgrades-only"
	KeyGPGKey       = "gpg-key"
	KeyRetries      = "retries"
	KeyTimeout      = "timeout"

	envPrefix = "RPMUPDATES"
)

// loadConfig layers configuration: flag defaults < config file <
// environment < flags set on the command line
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	path, explicit := configPath(cmd)
	if err := mergeConfigFile(v, path, explicit); err != nil {
		return &models.UpdateError{
			Type:   models.ErrInvalidConfig,
			Source: path,
			Err:    err,
		}
	}
	return nil
}

// configPath returns the configuration file to read and whether it was asked
// for explicitly. An explicit file must exist.
func configPath(cmd *cobra.Command) (string, bool) {
	if path, _ := cmd.Flags().GetString(KeyConfig); path != "" {
		return path, true
	}
	if path := os.Getenv(envPrefix + "_CONFIG"); path != "" {
		return path, true
	}

	var candidates []string
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "rpmupdates", "config.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".rpmupdates.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, false
		}
	}
	return "", false
}

func mergeConfigFile(v *viper.Viper, path string, required bool) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	logrus.Debugf("Loaded configuration from %s", path)
	return nil
}

// checkConfigFromViper resolves the check configuration
func checkConfigFromViper(v *viper.Viper) models.CheckConfig {
	return models.CheckConfig{
		InventoryPath: v.GetString(KeyRPM),
		Feeds:         v.GetStringSlice(KeyFeed),
		Filters: models.Filters{
			IncludeBugfix:   v.GetBool(KeyBugs),
			IncludeSecurity: !v.GetBool(KeyNoSecurity),
			IncludeAll:      v.GetBool(KeyAll),
		},
		UpgradesOnly: v.GetBool(KeyUpgradesOnly),
		GPGKeyPath:   v.GetString(KeyGPGKey),
		Retries:      v.GetInt(KeyRetries),
		Timeout:      v.GetDuration(KeyTimeout),
		Verbose:      v.GetBool(KeyVerbose),
	}
}

func validateConfig(config *models.CheckConfig) error {
	if config.InventoryPath == "" {
		return &models.UpdateError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("rpm is required"),
		}
	}

	config.Feeds = cleanFeeds(config.Feeds)
	if len(config.Feeds) == 0 {
		return &models.UpdateError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("at least one feed is required"),
		}
	}

	if config.Retries < 0 {
		return &models.UpdateError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("retries must not be negative"),
		}
	}

	return nil
}

// cleanFeeds splits comma separated entries the way the --feed flag does, so
// RPMUPDATES_FEED=a.xml,b.xml names two feeds. Blank entries are dropped.
func cleanFeeds(feeds []string) []string {
	var out []string
	for _, entry := range feeds {
		for _, f := range strings.Split(entry, ",") {
			if f = strings.TrimSpace(f); f != "" {
				out = append(out, f)
			}
		}
	}
	return out
}
