package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnsskit/convtime"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	From string
	To   string
	Aprx float64
}

// ConvertResult is the success payload of the convert command.
type ConvertResult struct {
	From   string    `json:"from"`
	To     string    `json:"to"`
	Values []float64 `json:"values"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <value>...",
		Short: "Convert a time payload between formats",
		Long: `Convert a time payload between two of the supported formats.

Payload shapes:
  mjd   <mjd>                            mjd2  <day> <frac>
  mjd3  <day> <secondsOfDay>             jd    <jd>
  cal   <year> <month> <day> <hour> <minute> <second>
  doy   <year> <dayOfYear> <hour> <minute> <second>
  gps   <week> <secondsOfWeek>           gps2  <week> <dayOfWeek> <hour> <minute> <second>
  sec   <posixSeconds>                   year  <decimalYear>`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "input format (required)")
	cmd.Flags().StringVar(&opts.To, "to", "", "output format (required)")
	cmd.Flags().Float64Var(&opts.Aprx, "aprx", 0, "rounding increment in seconds (0 = full precision)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runConvert(rootOpts *RootOptions, opts *ConvertOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	from, err := convtime.ParseFormat(opts.From)
	if err != nil {
		return outputArgumentError(formatter, err)
	}
	to, err := convtime.ParseFormat(opts.To)
	if err != nil {
		return outputArgumentError(formatter, err)
	}
	values, err := parseValues(args)
	if err != nil {
		return outputArgumentError(formatter, err)
	}

	formatter.VerboseLog("Converting %v from %s to %s (aprx=%v)", values, from, to, opts.Aprx)

	result, err := convtime.Convert(from, to, values, opts.Aprx)
	if err != nil {
		return outputConversionError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(ConvertResult{
			From:   string(from),
			To:     string(to),
			Values: result,
		})
	}

	fmt.Fprintln(formatter.Writer, formatValues(result))
	return nil
}

// parseValues parses positional arguments as float64 values.
func parseValues(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not a number", i+1, a)
		}
		values[i] = v
	}
	return values, nil
}

// formatValues renders a payload as space-separated numbers, shortest
// round-trippable form.
func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

// outputArgumentError reports a bad argument or format name (exit code 2).
func outputArgumentError(formatter *OutputFormatter, err error) error {
	code := ErrCodeBadArgument
	var ce *convtime.ConvError
	if errors.As(err, &ce) {
		code = string(ce.Code)
	}
	_ = formatter.Error(code, err.Error(), nil)
	return NewExitError(ExitCommandError, err.Error())
}

// outputConversionError reports a failed conversion (exit code 1).
func outputConversionError(formatter *OutputFormatter, err error) error {
	code := ErrCodeBadArgument
	var ce *convtime.ConvError
	if errors.As(err, &ce) {
		code = string(ce.Code)
	}
	_ = formatter.Error(code, err.Error(), nil)
	return NewExitError(ExitFailure, err.Error())
}
