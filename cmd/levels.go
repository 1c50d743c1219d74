package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/mordilloSan/schlog/logger"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const optionNameOutput = "output"

func (c *command) initLevelsCmd() {
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List the built-in levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := cmd.Flags().GetString(optionNameOutput)
			if err != nil {
				return err
			}
			levels := logger.Levels()
			out := cmd.OutOrStdout()

			switch output {
			case "text":
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tPRIORITY\tSCOPE")
				for _, l := range levels {
					fmt.Fprintf(w, "%s\t%d\t%s\n", l.Name(), l.Priority(), l.Scope())
				}
				return w.Flush()
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(levels)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(levels); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unsupported output %q: expected text, json or yaml", output)
			}
		},
	}
	cmd.Flags().StringP(optionNameOutput, "o", "text", "output format: text, json or yaml")
	c.root.AddCommand(cmd)
}
