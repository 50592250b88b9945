package cmd

import (
	"github.com/spf13/cobra"

	"github.com/user/secgate/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "secgate",
	Short: "Compliance gate for container security scan artifacts",
	Long: `Secgate evaluates the JSON artifacts produced by the pipeline's security
scanners (secret scan, vulnerability scans, image hardening scan, SBOM) against
a fixed set of compliance controls and writes a single pass/fail report.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.DebugEnabled = DebugMode
	},
}

var DebugMode bool

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable debug logging")
}
