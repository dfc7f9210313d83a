package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"couchnav/internal/ui/input"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the effective key bindings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(nil)
		if err != nil {
			return err
		}
		km := input.NewKeyMap(input.Bindings(cfg.Keys))
		rows := []struct {
			name string
			keys []string
		}{
			{"up", km.Up.Keys()},
			{"down", km.Down.Keys()},
			{"left", km.Left.Keys()},
			{"right", km.Right.Keys()},
			{"enter", km.Enter.Keys()},
			{"back", km.Back.Keys()},
			{"help", km.Help.Keys()},
			{"quit", km.Quit.Keys()},
		}
		out := cmd.OutOrStdout()
		for _, r := range rows {
			fmt.Fprintf(out, "%-6s %s\n", r.name, strings.Join(r.keys, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
