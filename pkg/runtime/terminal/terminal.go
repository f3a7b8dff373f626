package terminal

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bharathk2498/migrationgpt/pkg/runtime/terminal/commands"
	"github.com/bharathk2498/migrationgpt/pkg/services/assessment"
	"github.com/bharathk2498/migrationgpt/pkg/store/pricing"
)

// CLI represents the command-line interface
type CLI struct {
	service  assessment.Service
	prices   pricing.Store
	discover commands.DiscoverFunc
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Service  assessment.Service
	Prices   pricing.Store
	Discover commands.DiscoverFunc
	Output   io.Writer
	Input    io.Reader
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Prices == nil {
		opts.Prices = pricing.NewStore()
	}
	if opts.Service == nil {
		opts.Service = assessment.NewService(assessment.WithPricing(opts.Prices))
	}

	cli := &CLI{
		service:  opts.Service,
		prices:   opts.Prices,
		discover: opts.Discover,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetIn(opts.Input)
	return cli
}

func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args for the next Execute.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "atlas",
		Short:         "Cloud migration assessment tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(commands.NewAssessCmd(cli.service, cli.discover))
	cmd.AddCommand(commands.NewCloudsCmd(cli.prices))

	return cmd
}
