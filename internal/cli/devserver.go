package cli

import (
	"github.com/spf13/cobra"

	"medclinic-client/internal/devserver"
)

func devserverCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devserver",
		Short: "Run a local clinic backend for development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := devserver.New(a.cfg.DevServer, a.log)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().String("port", "", "listen port (DEV_PORT)")
	cmd.Flags().String("db-dsn", "", "MySQL DSN; empty keeps data in memory (DEV_DB_DSN)")
	return cmd
}
