package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Prueba la conexión con el backend remoto",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.Close()

		if d.gateway == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "demo mode: remote backend disabled")
			return nil
		}
		if !d.gateway.TestConnection(cmd.Context()) {
			return errors.New("remote backend unreachable: " + d.cfg.Remote.BaseURL)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "remote backend reachable")
		return nil
	},
}
