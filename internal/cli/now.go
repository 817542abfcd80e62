package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnsskit/convtime"
)

// NowOptions holds flags for the now command.
type NowOptions struct {
	To       string
	Template string
	Aprx     float64
}

// NowResult is the success payload of the now command.
type NowResult struct {
	To     string    `json:"to,omitempty"`
	Values []float64 `json:"values,omitempty"`
	Output string    `json:"output,omitempty"`
}

// NewNowCommand creates the now command.
func NewNowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NowOptions{}

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current instant (UTC)",
		Long: `Print the current instant (UTC) as a payload in the --to format, or
rendered through --template when given.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.To, "to", "cal", "output format")
	cmd.Flags().StringVar(&opts.Template, "template", "", "formatting template (overrides --to)")
	cmd.Flags().Float64Var(&opts.Aprx, "aprx", 1e-6, "rounding increment in seconds (0 = full precision)")

	return cmd
}

func runNow(rootOpts *RootOptions, opts *NowOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	pt := convtime.Now()

	if opts.Template != "" {
		output := pt.Format(opts.Template)
		if formatter.Format == "json" {
			return formatter.Success(NowResult{Output: output})
		}
		fmt.Fprintln(formatter.Writer, output)
		return nil
	}

	to, err := convtime.ParseFormat(opts.To)
	if err != nil {
		return outputArgumentError(formatter, err)
	}

	values, err := pt.Get(to, opts.Aprx)
	if err != nil {
		return outputConversionError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(NowResult{To: string(to), Values: values})
	}

	fmt.Fprintln(formatter.Writer, formatValues(values))
	return nil
}
