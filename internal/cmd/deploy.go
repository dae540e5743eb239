package cmd

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/studio-mirai/prime-machin-contracts/internal/classify"
	"github.com/studio-mirai/prime-machin-contracts/internal/config"
	"github.com/studio-mirai/prime-machin-contracts/internal/deploy"
	"github.com/studio-mirai/prime-machin-contracts/internal/deployconfig"
	"github.com/studio-mirai/prime-machin-contracts/internal/faucet"
	"github.com/studio-mirai/prime-machin-contracts/internal/handoff"
	"github.com/studio-mirai/prime-machin-contracts/internal/metrics"
	"github.com/studio-mirai/prime-machin-contracts/internal/output"
	"github.com/studio-mirai/prime-machin-contracts/internal/rpc"
	"github.com/studio-mirai/prime-machin-contracts/internal/suicli"
)

// deployOptions holds the flags for the deploy command.
type deployOptions struct {
	outputDir    string
	packagePath  string
	metricsFile  string
	settleDelay  time.Duration
	strictKeys   bool
	skipFaucet   bool
	skipTransfer bool
}

// NewDeployCmd creates the deploy command.
func NewDeployCmd(g *GlobalConfig) *cobra.Command {
	opts := &deployOptions{}

	c := &cobra.Command{
		Use:   "deploy",
		Short: "Publish the package and record its objects",
		Long: `Publish the Move package and write the deployment config.

Steps, in order, each aborting the run on failure:
  1. fund the deployer from the faucet (localnet and mirainet only)
  2. sui client publish
  3. wait for the created objects to settle
  4. classify the created objects into configuration keys
  5. write <outputDir>/<network>.json
  6. transfer the UpgradeCap to the treasury

Faucet failures are logged as warnings and do not stop the run. Set
faucet.strict: true in the config file to make any failed funding request fatal.

Examples:
  # Deploy to a local validator
  NETWORK=localnet pmc deploy

  # Publish to testnet but keep the UpgradeCap
  pmc deploy --network testnet --skip-transfer`,
		RunE: func(c *cobra.Command, args []string) error {
			return runDeploy(c.Context(), g, c, opts)
		},
	}

	c.Flags().StringVar(&opts.outputDir, "output-dir", "", "Directory for <network>.json (config: outputDir)")
	c.Flags().StringVar(&opts.packagePath, "package-path", "", "Move package to publish (config: sui.packagePath)")
	c.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file (config: deploy.metricsFile)")
	c.Flags().DurationVar(&opts.settleDelay, "settle-delay", config.DefaultSettleDelay, "Wait between publish and classification (config: deploy.settleDelay)")
	c.Flags().BoolVar(&opts.strictKeys, "strict-keys", false, "Fail when two objects map to the same key (config: deploy.strictKeys)")
	c.Flags().BoolVar(&opts.skipFaucet, "skip-faucet", false, "Do not request faucet funds")
	c.Flags().BoolVar(&opts.skipTransfer, "skip-transfer", false, "Do not transfer the UpgradeCap")

	return c
}

func runDeploy(ctx context.Context, g *GlobalConfig, c *cobra.Command, opts *deployOptions) error {
	cfg := g.Config

	profile, err := resolveProfile(g)
	if err != nil {
		return fail(err)
	}

	settleDelay := cfg.Deploy.SettleDelay
	if c.Flags().Changed("settle-delay") {
		settleDelay = opts.settleDelay
	}
	strictKeys := cfg.Deploy.StrictKeys || opts.strictKeys
	outputDir, err := config.ExpandPath(stringOr(opts.outputDir, cfg.OutputDir))
	if err != nil {
		return fail(err)
	}

	sui := suicli.NewClient(cfg.Sui.Binary, cfg.Sui.GasBudget, suicli.ExecRunner{})
	sui.PackagePath = stringOr(opts.packagePath, cfg.Sui.PackagePath)

	validator, err := deployconfig.NewValidator()
	if err != nil {
		return fail(err)
	}

	runID := uuid.NewString()
	network := string(profile.ID)

	p := &deploy.Pipeline{
		Network:         profile,
		FaucetRecipient: cfg.Faucet.Recipient,
		FaucetOptions: faucet.WarmUpOptions{
			Attempts:      cfg.Faucet.Attempts,
			RatePerSecond: cfg.Faucet.RatePerSecond,
		},
		StrictFaucet: cfg.Faucet.Strict,
		Publisher:    sui,
		Classifier: classify.New(
			classify.DefaultRules(project(cfg), rpc.NewClient(profile.RPCURL)),
			classify.WithStrictKeys(strictKeys),
		),
		Writer: &deployconfig.Writer{Dir: outputDir, Validator: validator},
		Handoff: &handoff.Handoff{
			Transferrer: sui,
			Treasury:    profile.TreasuryAddress,
		},
		PreviousConfig: func() (deployconfig.DeploymentConfig, error) {
			return deployconfig.Read(outputDir, network)
		},
		DiffStyle:    diffStyle(),
		SettleDelay:  settleDelay,
		SkipFaucet:   opts.skipFaucet,
		SkipTransfer: opts.skipTransfer,
		RunID:        runID,
	}
	if profile.HasFaucet() {
		p.Funder = faucet.NewClient(profile.FaucetURL)
	}

	metricsFile := stringOr(opts.metricsFile, cfg.Deploy.MetricsFile)
	if metricsFile != "" {
		p.Metrics = metrics.NewRecorder(network, runID)
	}

	_, runErr := p.Run(ctx)

	if p.Metrics != nil {
		path, err := config.ExpandPath(metricsFile)
		if err == nil {
			err = p.Metrics.WriteTextfile(path)
		}
		if err != nil {
			output.Warn("writing metrics", "file", metricsFile, "err", err)
		}
	}

	if runErr != nil {
		return fail(runErr)
	}

	output.Println(output.FormatCheckmark("Deployed to " + output.StyleNoun.Render(network)))
	return nil
}

// diffStyle renders dyff reports on terminals and unified diffs elsewhere.
func diffStyle() deployconfig.DiffStyle {
	if output.IsTTY() {
		return deployconfig.DiffHuman
	}
	return deployconfig.DiffUnified
}
