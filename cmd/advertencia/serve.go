package main

import (
	"github.com/spf13/cobra"

	"github.com/mcotrim/advertencia/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia o formulário web",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}

		log, err := buildLogger(cfg.Log)
		if err != nil {
			return err
		}
		defer log.Sync()

		srv, err := server.New(cfg, log)
		if err != nil {
			return err
		}
		return srv.Listen()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "endereço de escuta (padrão da configuração)")
}
