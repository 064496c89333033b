package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	datesCmd := &cobra.Command{Use: "dates", Short: "Shared calendar operations"}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Print the stored dates document",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := client().doGet("/dates")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	datesCmd.AddCommand(getCmd)

	setCmd := &cobra.Command{
		Use:   "set KEY=VALUE [KEY=VALUE...]",
		Short: "Merge key/value pairs into the dates document",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{}
			for _, arg := range args {
				k, v, ok := strings.Cut(arg, "=")
				if !ok || k == "" {
					return fmt.Errorf("expected KEY=VALUE, got %q", arg)
				}
				payload[k] = v
			}
			data, err := client().doPostJSON("/dates", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	datesCmd.AddCommand(setCmd)

	rootCmd.AddCommand(datesCmd)
}
