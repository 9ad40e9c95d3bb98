package nbtcmd

import (
	"context"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brendoncarroll/nbtkit/pkg/nbtfile"
	"github.com/brendoncarroll/nbtkit/pkg/nbtio"
	"github.com/brendoncarroll/nbtkit/pkg/nbtstore"
)

var (
	ctx = context.Background()

	dbDir   string
	bucket  string
	useGzip bool
	verbose bool
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&dbDir, "db", "./", "directory holding nbtkit.db")
	flags.StringVar(&bucket, "bucket", nbtstore.DefaultBucket, "bolt bucket for stored compounds")
	flags.BoolVar(&useGzip, "gzip", true, "gzip files and stored compounds when writing")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug output")
}

var rootCmd = &cobra.Command{
	Use:   "nbtkit",
	Short: "nbtkit reads and edits NBT compounds",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.InfoLevel)
		}
		return nil
	},
	SilenceUsage: true,
}

func codec() nbtio.Codec {
	if useGzip {
		return nbtio.Gzip{}
	}
	return nbtio.Binary{}
}

func openDoc(p string) *nbtfile.Doc {
	return nbtfile.Open(filepath.Dir(p), filepath.Base(p), codec())
}

// openStore opens the store under --db. The returned func closes it.
func openStore() (*nbtstore.Store, func() error, error) {
	params, err := nbtstore.DefaultParams(dbDir)
	if err != nil {
		return nil, nil, err
	}
	params.Bucket = bucket
	params.Codec = codec()
	return nbtstore.New(*params), params.DB.Close, nil
}
