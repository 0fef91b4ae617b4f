package cli

import (
	"fmt"

	"github.com/ralt/rpmupdates/internal/inventory"
	"github.com/ralt/rpmupdates/internal/scanner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewInventoryCmd creates the inventory command
func NewInventoryCmd() *cobra.Command {
	var inputDir string

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "List .rpm files in the format of 'rpm -qa'",
		Long: `Scans a directory for binary RPM packages and prints one
name-version-release.arch line per package. The output can be given to
'check --rpm' when 'rpm -qa' cannot be run on the target host.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.Infof("Scanning directory: %s", inputDir)

			packages, err := inventory.FromRPMFiles(cmd.Context(), scanner.NewFileSystemScanner(), inputDir)
			if err != nil {
				return err
			}

			if len(packages) == 0 {
				logrus.Warn("No packages found in input directory")
				return nil
			}

			for _, line := range inventory.Lines(packages) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input-dir", "i", ".", "Input directory to scan")

	return cmd
}
