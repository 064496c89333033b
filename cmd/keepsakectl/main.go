package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag   string
	tokenFlag string
	rootCmd   = &cobra.Command{
		Use:   "keepsakectl",
		Short: "CLI client for the keepsake REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:3000", "Keepsake server base URL")
	rootCmd.PersistentFlags().StringVarP(&tokenFlag, "token", "t", "", "Session token for gated endpoints")

	pingCmd := &cobra.Command{
		Use:   "ping",
		Short: "Check server liveness and uptime",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := client().doGet("/ping")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(pingCmd)

	loginCmd := &cobra.Command{
		Use:   "login PASSWORD",
		Short: "Exchange the shared password for a session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := client().doPostJSON("/check-password", map[string]interface{}{"password": args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(loginCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
