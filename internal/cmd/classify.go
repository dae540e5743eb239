package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/studio-mirai/prime-machin-contracts/internal/classify"
	"github.com/studio-mirai/prime-machin-contracts/internal/deployconfig"
	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
	"github.com/studio-mirai/prime-machin-contracts/internal/output"
	"github.com/studio-mirai/prime-machin-contracts/internal/rpc"
	"github.com/studio-mirai/prime-machin-contracts/internal/suicli"
)

// classifyOptions holds the flags for the classify command.
type classifyOptions struct {
	rpcURL     string
	useNetwork bool
	format     string
	strictKeys bool
}

// NewClassifyCmd creates the classify command.
func NewClassifyCmd(g *GlobalConfig) *cobra.Command {
	opts := &classifyOptions{}

	c := &cobra.Command{
		Use:   "classify <publish-output.json>",
		Short: "Classify a saved publish result",
		Long: `Classify the object changes of a saved 'sui client publish --json' output
without publishing or writing anything.

Publisher objects need an RPC lookup for their module name. Pass --rpc with a
fullnode URL, or --use-network to use the RPC endpoint of the selected
network. Without either, publishers are keyed "Publisher".

Examples:
  pmc classify publish.json
  pmc classify publish.json --network localnet --use-network -o table`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runClassify(c.Context(), g, c.OutOrStdout(), args[0], opts)
		},
	}

	c.Flags().StringVar(&opts.rpcURL, "rpc", "", "Fullnode JSON-RPC URL for publisher lookups")
	c.Flags().BoolVar(&opts.useNetwork, "use-network", false, "Use the RPC URL of the selected network")
	c.Flags().StringVarP(&opts.format, "output", "o", "json", "Output format: json, yaml, table")
	c.Flags().BoolVar(&opts.strictKeys, "strict-keys", false, "Fail when two objects map to the same key")

	return c
}

func runClassify(ctx context.Context, g *GlobalConfig, w io.Writer, path string, opts *classifyOptions) error {
	format, err := output.ParseOutputFormat(opts.format)
	if err != nil {
		return fail(oerrors.NewValidationError(err.Error(), "", ""))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fail(oerrors.NewNotFoundError("publish output not found", path, ""))
		}
		return fail(err)
	}

	result, err := suicli.ParsePublishResult(data)
	if err != nil {
		return failf(err, "%s", path)
	}

	rpcURL := opts.rpcURL
	if rpcURL == "" && opts.useNetwork {
		profile, err := resolveProfile(g)
		if err != nil {
			return fail(err)
		}
		rpcURL = profile.RPCURL
	}

	var fetcher classify.ModuleNameFetcher
	if rpcURL != "" {
		fetcher = rpc.NewClient(rpcURL)
	}

	classifier := classify.New(
		classify.DefaultRules(project(g.Config), fetcher),
		classify.WithStrictKeys(opts.strictKeys || g.Config.Deploy.StrictKeys),
	)
	res, err := classifier.Classify(ctx, result.ObjectChanges)
	if err != nil {
		return fail(err)
	}

	out, err := renderConfig(res.Config, format)
	if err != nil {
		return fail(err)
	}
	fmt.Fprint(w, out)

	output.Debug("classified publish output",
		"entries", len(res.Config),
		"collisions", len(res.Collisions),
		"ignored", res.Ignored,
	)
	return nil
}

// renderConfig formats a deployment config for stdout.
func renderConfig(c deployconfig.DeploymentConfig, format output.OutputFormat) (string, error) {
	switch format {
	case output.FormatYAML:
		data, err := yaml.Marshal(map[string]string(c))
		if err != nil {
			return "", err
		}
		return string(data), nil
	case output.FormatTable:
		return output.RenderKeyValueTable("KEY", "OBJECT ID", c.SortedKeys(), c) + "\n", nil
	default:
		data, err := c.Encode()
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}
