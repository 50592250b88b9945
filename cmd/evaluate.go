package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/user/secgate/pkg/artifacts"
	"github.com/user/secgate/pkg/config"
	"github.com/user/secgate/pkg/engine"
	"github.com/user/secgate/pkg/logging"
)

var policyPath string

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate the scanner artifacts and write the compliance report",
	Long: `Evaluate reads the scanner output files from the artifact directory,
checks the six compliance controls, writes the markdown report next to the
artifacts and prints the same document to stdout. The exit status is zero
only when the report was written and every control passed.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// .env files help local runs; CI provides the real environment.
		_ = godotenv.Load(".env.local")
		_ = godotenv.Load(".env")

		cfg := config.Load()
		policy, err := config.LoadPolicy(policyPath)
		if err != nil {
			return err
		}

		runID := uuid.NewString()
		logging.Debugf("run %s: artifact dir %s", runID, cfg.ArtifactDir)

		gate := &engine.Gate{
			Store:  artifacts.NewStore(cfg.ArtifactDir),
			Policy: policy,
			Context: engine.PipelineContext{
				RunID:      runID,
				Commit:     cfg.Pipeline.Commit,
				Ref:        cfg.Pipeline.Ref,
				Repository: cfg.Pipeline.Repository,
				RunURL:     cfg.Pipeline.RunURL(),
			},
			Now: time.Now,
		}
		outcome := gate.Run()

		// Secondary channel: the surrounding pipeline captures stdout (e.g.
		// into the step summary).
		fmt.Print(outcome.Document)

		if !outcome.Written {
			return fmt.Errorf("report could not be persisted to %s", outcome.Path)
		}
		if outcome.Overall != engine.StatusPass {
			var failed []string
			for _, v := range outcome.Verdicts {
				if v.Status != engine.StatusPass {
					failed = append(failed, v.ID)
				}
			}
			return fmt.Errorf("compliance gate failed: %s", strings.Join(failed, ", "))
		}
		logging.Infof("[Gate] all controls passed, report written to %s", outcome.Path)
		return nil
	},
}

func init() {
	evaluateCmd.Flags().StringVar(&policyPath, "policy", "policy.yaml", "Path to an optional policy override file")
	rootCmd.AddCommand(evaluateCmd)
}
