package nbtcmd

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brendoncarroll/nbtkit/pkg/nbthttp"
)

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:6026", "--addr=192.168.1.100:8080")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the stored compounds over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()
		log.Info("listening on ", serveAddr)
		return http.ListenAndServe(serveAddr, nbthttp.New(s))
	},
}
