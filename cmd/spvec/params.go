package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"honnef.co/go/spvec/internal/params"
)

// settingsFlags are the flags shared by commands that read settings.
type settingsFlags struct {
	file string
	set  []string
}

func (s *settingsFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&s.file, "params", "", "Settings file (.toml, .yaml, or name=value lines)")
	fs.StringArrayVar(&s.set, "set", nil, "Override a setting, as name=value (repeatable)")
}

// load returns the default settings, overlaid by the settings file and
// the overrides.
func (s *settingsFlags) load() (*params.File, error) {
	f := params.Default()
	if s.file != "" {
		var err error
		f, err = params.Load(s.file)
		if err != nil {
			return nil, err
		}
	}
	for _, kv := range s.set {
		if err := f.Set(kv); err != nil {
			return nil, fmt.Errorf("--set %s: %w", kv, err)
		}
	}
	return f, nil
}

func newParamsCmd() *cobra.Command {
	var (
		settings settingsFlags
		out      string
		format   string
	)
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print or save the effective settings",
		Long: `Prints the settings a run would use, or saves them to a file whose
format is chosen by its extension. Known names for --set: ` + fmt.Sprint(params.Names()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := settings.load()
			if err != nil {
				return err
			}
			if out != "" {
				if err := f.Save(out); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
				return nil
			}
			pf, err := params.ParseFormat(format)
			if err != nil {
				return err
			}
			return f.Encode(cmd.OutOrStdout(), pf)
		},
	}
	settings.register(cmd.Flags())
	cmd.Flags().StringVar(&out, "out", "", "Save the settings to this file")
	cmd.Flags().StringVar(&format, "format", "lines", "Output format without --out (lines, toml, yaml)")
	return cmd
}
