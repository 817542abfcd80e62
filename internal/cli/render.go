package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gnsskit/convtime"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	From          string
	Template      string
	Preset        string
	TemplatesFile string
	ListPresets   bool
}

// RenderResult is the success payload of the render command.
type RenderResult struct {
	From     string `json:"from"`
	Template string `json:"template"`
	Output   string `json:"output"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render <value>...",
		Short: "Render an instant through a formatting template",
		Long: `Render an instant through a formatting template.

The instant is given as a payload in the --from format (see convert for
the payload shapes). The template comes from --template, or from a named
preset via --preset; --templates-file adds presets from a YAML file.

Tokens: [YYYY] [YY] [MM] [DD] [HH] [MN] [DDD] [WWWW] [D] [SS<k>]
[DSEC<k>] [MJD<k>], where <k> is a decimal precision. The highest <k>
among seconds tokens sets one shared rounding increment, so second
rounding that crosses midnight moves the date tokens with it.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "input format (required unless --list-presets)")
	cmd.Flags().StringVar(&opts.Template, "template", "", "formatting template")
	cmd.Flags().StringVar(&opts.Preset, "preset", "", "named preset template")
	cmd.Flags().StringVar(&opts.TemplatesFile, "templates-file", "", "YAML file with additional presets")
	cmd.Flags().BoolVar(&opts.ListPresets, "list-presets", false, "list available presets and exit")

	return cmd
}

func runRender(rootOpts *RootOptions, opts *RenderOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	presets, err := LoadPresets(opts.TemplatesFile)
	if err != nil {
		_ = formatter.Error(ErrCodeTemplate, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	if opts.ListPresets {
		return outputPresets(formatter, presets)
	}

	template, err := resolveTemplate(opts, presets)
	if err != nil {
		_ = formatter.Error(ErrCodeTemplate, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	from, err := convtime.ParseFormat(opts.From)
	if err != nil {
		return outputArgumentError(formatter, err)
	}
	values, err := parseValues(args)
	if err != nil {
		return outputArgumentError(formatter, err)
	}

	pt, err := convtime.NewPreciseTime(from, values)
	if err != nil {
		return outputConversionError(formatter, err)
	}

	formatter.VerboseLog("Rendering %v (%s) through %q", values, from, template)

	output := pt.Format(template)
	if formatter.Format == "json" {
		return formatter.Success(RenderResult{
			From:     string(from),
			Template: template,
			Output:   output,
		})
	}

	fmt.Fprintln(formatter.Writer, output)
	return nil
}

// resolveTemplate picks the template from the flags: --template wins,
// then --preset.
func resolveTemplate(opts *RenderOptions, presets map[string]Preset) (string, error) {
	if opts.Template != "" {
		return opts.Template, nil
	}
	if opts.Preset == "" {
		return "", fmt.Errorf("either --template or --preset is required")
	}
	p, ok := presets[opts.Preset]
	if !ok {
		return "", fmt.Errorf("unknown preset %q", opts.Preset)
	}
	return p.Template, nil
}

// outputPresets lists the available presets sorted by name.
func outputPresets(formatter *OutputFormatter, presets map[string]Preset) error {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	if formatter.Format == "json" {
		list := make([]Preset, 0, len(names))
		for _, name := range names {
			list = append(list, presets[name])
		}
		return formatter.Success(list)
	}

	for _, name := range names {
		p := presets[name]
		if p.Description != "" {
			fmt.Fprintf(formatter.Writer, "%-10s %-34s %s\n", p.Name, p.Template, p.Description)
		} else {
			fmt.Fprintf(formatter.Writer, "%-10s %s\n", p.Name, p.Template)
		}
	}
	return nil
}
