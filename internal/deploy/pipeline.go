// Package deploy runs the publish-to-handoff deployment sequence.
package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studio-mirai/prime-machin-contracts/internal/classify"
	"github.com/studio-mirai/prime-machin-contracts/internal/config"
	"github.com/studio-mirai/prime-machin-contracts/internal/deployconfig"
	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
	"github.com/studio-mirai/prime-machin-contracts/internal/faucet"
	"github.com/studio-mirai/prime-machin-contracts/internal/metrics"
	"github.com/studio-mirai/prime-machin-contracts/internal/output"
	"github.com/studio-mirai/prime-machin-contracts/internal/suicli"
)

// Step names used in logs and metrics.
const (
	StepFaucet   = "faucet"
	StepPublish  = "publish"
	StepSettle   = "settle"
	StepClassify = "classify"
	StepWrite    = "write"
	StepHandoff  = "handoff"
)

// Publisher publishes the Move package.
type Publisher interface {
	Publish(ctx context.Context) (*suicli.PublishResult, error)
}

// Classifier maps object changes to a deployment config.
type Classifier interface {
	Classify(ctx context.Context, changes []suicli.ObjectChange) (*classify.Result, error)
}

// ConfigWriter persists a deployment config for a network.
type ConfigWriter interface {
	Write(network string, c deployconfig.DeploymentConfig) (string, error)
}

// Handoff transfers the UpgradeCap of a deployment.
type Handoff interface {
	TransferUpgradeCap(ctx context.Context, c deployconfig.DeploymentConfig) (string, error)
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pipeline holds the collaborators of one deployment.
type Pipeline struct {
	Network config.NetworkProfile

	// Funder is used only on networks with a faucet. Nil disables funding.
	Funder          faucet.Funder
	FaucetRecipient string
	FaucetOptions   faucet.WarmUpOptions
	// StrictFaucet aborts the run when any funding attempt failed.
	StrictFaucet bool

	Publisher  Publisher
	Classifier Classifier
	Writer     ConfigWriter
	Handoff    Handoff

	// PreviousConfig, when set, returns the config currently on disk so the
	// change can be shown before it is overwritten.
	PreviousConfig func() (deployconfig.DeploymentConfig, error)
	DiffStyle      deployconfig.DiffStyle

	SettleDelay time.Duration
	Sleep       SleepFunc

	SkipFaucet   bool
	SkipTransfer bool

	// Metrics is optional.
	Metrics *metrics.Recorder

	// RunID labels logs and metrics. Generated when empty.
	RunID string
}

// Report describes what a run did.
type Report struct {
	RunID          string
	Funding        *faucet.FundingReport
	Publish        *suicli.PublishResult
	Classification *classify.Result
	ConfigPath     string
	Diff           string
	TransferOutput string
}

// Run executes the deployment. Steps run strictly in order and the first
// failure aborts the run; nothing already done is rolled back.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	if p.RunID == "" {
		p.RunID = uuid.NewString()
	}
	if p.Sleep == nil {
		p.Sleep = Sleep
	}

	report := &Report{RunID: p.RunID}
	log := output.NetworkLogger(string(p.Network.ID))
	log.Info("starting deployment", "run", p.RunID, "rpc", p.Network.RPCURL)

	err := p.run(ctx, report)
	if p.Metrics != nil {
		p.Metrics.Finish(time.Now(), err)
	}
	return report, err
}

func (p *Pipeline) run(ctx context.Context, report *Report) error {
	if err := p.fund(ctx, report); err != nil {
		return err
	}

	if err := p.step(StepPublish, func() error {
		// Spin may return on cancellation while Publish is still running,
		// so the result is only handed to report once Spin reports success.
		var published *suicli.PublishResult
		err := output.Spin(ctx, "Publishing package to "+string(p.Network.ID), func() error {
			res, err := p.Publisher.Publish(ctx)
			published = res
			return err
		})
		if err != nil {
			return err
		}
		report.Publish = published
		return nil
	}); err != nil {
		return err
	}
	p.printChanges(report.Publish)

	if err := p.step(StepSettle, func() error {
		output.Debug("waiting for objects to settle", "delay", p.SettleDelay)
		return p.Sleep(ctx, p.SettleDelay)
	}); err != nil {
		return err
	}

	if err := p.step(StepClassify, func() error {
		res, err := p.Classifier.Classify(ctx, report.Publish.ObjectChanges)
		report.Classification = res
		return err
	}); err != nil {
		return err
	}
	cfg := report.Classification.Config
	if p.Metrics != nil {
		p.Metrics.Classified(len(cfg), len(report.Classification.Collisions), report.Classification.Ignored)
	}

	p.showDiff(report, cfg)

	if err := p.step(StepWrite, func() error {
		path, err := p.Writer.Write(string(p.Network.ID), cfg)
		report.ConfigPath = path
		return err
	}); err != nil {
		return err
	}
	output.Println(output.FormatCheckmark("Config saved to " + report.ConfigPath))
	for _, k := range cfg.SortedKeys() {
		output.Println(output.FormatEntryLine(k, cfg[k]))
	}

	if p.SkipTransfer {
		output.Println(output.FormatStepLine(StepHandoff, output.StatusSkipped))
		return nil
	}
	return p.step(StepHandoff, func() error {
		out, err := p.Handoff.TransferUpgradeCap(ctx, cfg)
		report.TransferOutput = out
		return err
	})
}

func (p *Pipeline) fund(ctx context.Context, report *Report) error {
	if !p.Network.HasFaucet() || p.Funder == nil {
		output.Debug("network has no faucet, skipping funding", "network", p.Network.ID)
		return nil
	}
	if p.SkipFaucet {
		output.Println(output.FormatStepLine(StepFaucet, output.StatusSkipped))
		return nil
	}

	return p.step(StepFaucet, func() error {
		report.Funding = faucet.WarmUp(ctx, p.Funder, p.FaucetRecipient, p.FaucetOptions)
		for _, a := range report.Funding.Attempts {
			if p.Metrics != nil {
				p.Metrics.FaucetRequest(a.Err)
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		fundErr := report.Funding.Err()
		if fundErr == nil {
			return nil
		}
		if p.StrictFaucet {
			return fundErr
		}
		output.Warn("continuing despite faucet failures",
			"succeeded", report.Funding.Succeeded(), "attempts", len(report.Funding.Attempts))
		return nil
	})
}

// step runs fn, timing it and recording the outcome.
func (p *Pipeline) step(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	d := time.Since(start)
	if p.Metrics != nil {
		p.Metrics.ObserveStep(name, d, err)
	}

	status := output.StatusOK
	if err != nil {
		status = output.StatusFailed
	}
	output.Println(output.FormatStepLine(name, status))
	output.Debug("step finished", "step", name, "duration", d.Round(time.Millisecond))

	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (p *Pipeline) printChanges(res *suicli.PublishResult) {
	data, err := json.MarshalIndent(res.ObjectChanges, "", "    ")
	if err != nil {
		output.Warn("rendering object changes", "err", err)
		return
	}
	output.Info("object changes", "count", len(res.ObjectChanges), "digest", res.Digest)
	output.Details(string(data))
}

func (p *Pipeline) showDiff(report *Report, next deployconfig.DeploymentConfig) {
	if p.PreviousConfig == nil {
		return
	}
	prev, err := p.PreviousConfig()
	if err != nil {
		if !errors.Is(err, oerrors.ErrNotFound) {
			output.Warn("reading previous deployment config", "err", err)
		}
		prev = deployconfig.DeploymentConfig{}
	}

	diff, err := deployconfig.Diff(string(p.Network.ID), prev, next, p.DiffStyle)
	if err != nil {
		output.Warn("rendering config diff", "err", err)
		return
	}
	report.Diff = diff
	output.Details(diff)
}
