package cmd

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"
)

const optionNameAs = "as"

func (c *command) initLogCmd() {
	c.root.AddCommand(&cobra.Command{
		Use:   "log <level> <message>...",
		Short: "Print a message at the given level",
		Long: `Print a message at the given level.

The level is a name (error, warn, info, debug) or a priority (0-3).
Nothing is printed when the level is filtered out by the threshold.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(args[0])
			if err != nil {
				return err
			}
			l, err := c.newLogger(cmd)
			if err != nil {
				return err
			}
			l.Log(level, strings.Join(args[1:], " "))
			return nil
		},
	})
}

func (c *command) initPipeCmd() {
	cmd := &cobra.Command{
		Use:   "pipe",
		Short: "Print every line read from standard input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			as, err := cmd.Flags().GetString(optionNameAs)
			if err != nil {
				return err
			}
			level, err := parseLevel(as)
			if err != nil {
				return err
			}
			l, err := c.newLogger(cmd)
			if err != nil {
				return err
			}
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				l.Log(level, scanner.Text())
			}
			return scanner.Err()
		},
	}
	cmd.Flags().String(optionNameAs, "info", "level of the printed lines")
	c.root.AddCommand(cmd)
}
