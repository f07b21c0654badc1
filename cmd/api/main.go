package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pet-care-companion/internal/platform/logger"
)

// @title Pet Care Companion API
// @version 1.0
// @description Backend-for-frontend de la app de cuidado de mascotas: traduce y reconcilia contra el backend remoto.
// @BasePath /

var envDir string

var rootCmd = &cobra.Command{
	Use:   "petcare",
	Short: "Pet care companion API",
	Long: `Sirve la API de la app de cuidado de mascotas sobre el backend remoto
(o sobre datos de ejemplo en modo demo).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envDir, "env-dir", ".", "directorio donde buscar el .env")
	rootCmd.AddCommand(serveCmd, pingCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		l, logErr := logger.New(logger.Config{Level: "debug", Format: logger.FormatConsole})
		if logErr != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
		os.Exit(1)
	}
}
