package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ralt/rpmupdates/internal/catalog"
	"github.com/ralt/rpmupdates/internal/feed"
	"github.com/ralt/rpmupdates/internal/inventory"
	"github.com/ralt/rpmupdates/internal/matcher"
	"github.com/ralt/rpmupdates/internal/models"
	"github.com/ralt/rpmupdates/internal/report"
	"github.com/ralt/rpmupdates/internal/signer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCheckCmd creates the check command
func NewCheckCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Print installed packages that have an update available",
		Long: `Reads the installed package list and every feed, compares them and prints
one package name per line for each package with a qualifying update.

A feed is a local XML file (optionally .gz, .xz or .zst compressed), the URL
of such a file, or the base URL of a yum repository such as
http://mirror.centos.org/centos/6/updates/x86_64/.`,
		Example: `  rpm -qa > installed.txt
  rpmupdates check -r installed.txt -x errata.latest.xml
  rpmupdates check -r installed.txt -x http://mirror.centos.org/centos/6/updates/x86_64/ --bugs -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := checkConfigFromViper(v)

			// Validate configuration
			if err := validateConfig(&config); err != nil {
				return err
			}

			logrus.Debugf("Configuration: %+v", config)

			return runCheck(cmd.Context(), &config, cmd.OutOrStdout())
		},
	}

	// Input flags
	cmd.Flags().StringP(KeyRPM, "r", "", "Path to the installed package list, as written by 'rpm -qa > filename'")
	cmd.Flags().StringSliceP(KeyFeed, "x", nil, "Update metadata file, URL or repository base URL (repeatable)")

	// Filter flags
	cmd.Flags().BoolP(KeyBugs, "b", false, "Include bugfix updates")
	cmd.Flags().Bool(KeyNoSecurity, false, "Ignore security updates")
	cmd.Flags().BoolP(KeyAll, "a", false, "Include updates of every class")
	cmd.Flags().BoolP(KeyUpgradesOnly, "u", true, "Only report updates to higher versions or releases")

	// Repository flags
	cmd.Flags().String(KeyGPGKey, "", "Public key used to verify repodata/repomd.xml.asc of repository feeds")
	cmd.Flags().Int(KeyRetries, 3, "Retries for failed repository downloads")
	cmd.Flags().Duration(KeyTimeout, 60*time.Second, "Timeout of a single repository download")

	return cmd
}

func runCheck(ctx context.Context, config *models.CheckConfig, out io.Writer) error {
	// Step 1: Read the installed packages
	lines, err := inventory.ReadInstalled(config.InventoryPath)
	if err != nil {
		return err
	}

	installed := catalog.BuildInstalled(lines)
	report.LogCatalog(logrus.StandardLogger(), installed)

	// Step 2: Read every feed
	loader, err := newLoader(config)
	if err != nil {
		return err
	}

	feeds := loadFeeds(ctx, loader, config)
	if len(feeds) == 0 {
		return &models.UpdateError{
			Type: models.ErrFeedFetch,
			Err:  fmt.Errorf("none of the %d feeds could be processed", len(config.Feeds)),
		}
	}

	// Step 3: Compare
	opts := matcher.Options{UpgradesOnly: config.UpgradesOnly}
	if config.Verbose {
		opts.Narrator = report.Narrator(logrus.StandardLogger())
	}

	result := matcher.Merge(feeds, installed, opts)
	report.LogSummary(logrus.StandardLogger(), result.Summary)

	// Step 4: Print the answers once all narration is done
	return report.Write(out, result.Answers)
}

func newLoader(config *models.CheckConfig) (*feed.Loader, error) {
	opts := []feed.Option{feed.WithRetries(config.Retries)}
	if config.Timeout > 0 {
		opts = append(opts, feed.WithTimeout(config.Timeout))
	}

	if config.GPGKeyPath != "" {
		verifier, err := signer.NewGPGVerifier(config.GPGKeyPath)
		if err != nil {
			return nil, &models.UpdateError{
				Type: models.ErrSignature,
				Err:  fmt.Errorf("failed to initialize GPG verifier: %w", err),
			}
		}
		logrus.Info("GPG verifier initialized")
		opts = append(opts, feed.WithVerifier(verifier))
	}

	return feed.NewLoader(opts...), nil
}

// loadFeeds builds one catalog per feed. A feed that cannot be loaded or has
// an unknown format is skipped with a warning.
func loadFeeds(ctx context.Context, loader *feed.Loader, config *models.CheckConfig) []models.Catalog {
	var feeds []models.Catalog

	for _, source := range config.Feeds {
		logrus.Debugf("Parsing feed %s", source)

		root, err := loader.Load(ctx, source)
		if feed.IsNoUpdateInfo(err) {
			logrus.Warnf("Skipping feed %s: the repository publishes no updateinfo", source)
			continue
		}
		if err != nil {
			logrus.Warnf("Skipping feed %s: %v", source, err)
			continue
		}

		c, err := catalog.BuildFeed(root, config.Filters, source)
		if err != nil {
			logrus.Warnf("Skipping feed %s: %v", source, err)
			continue
		}

		report.LogCatalog(logrus.StandardLogger(), c)
		feeds = append(feeds, c)
	}

	return feeds
}
