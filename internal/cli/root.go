package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "rpmupdates",
		Short: "Find installed RPM packages with available updates",
		Long: `Rpmupdates compares a list of installed packages (the output of
'rpm -qa') with update metadata and prints the names of the packages
that have an update available.

Supported update metadata:
  - errata lists with an <opt> root (e.g. CentOS errata announcements)
  - yum repository updateinfo.xml, read locally or from a repository URL`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(v, cmd); err != nil {
				return err
			}

			// Setup logging
			if v.GetBool(KeyVerbose) {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP(KeyVerbose, "v", false, "Enable verbose logging and show every compared update")
	rootCmd.PersistentFlags().String(KeyConfig, "", "Config file (default $XDG_CONFIG_HOME/rpmupdates/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(NewCheckCmd(v))
	rootCmd.AddCommand(NewInventoryCmd())

	return rootCmd
}
