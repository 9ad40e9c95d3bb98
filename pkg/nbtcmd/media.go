package nbtcmd

import (
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/brendoncarroll/nbtkit/pkg/taggers"
	"github.com/brendoncarroll/nbtkit/pkg/typed"
)

func init() {
	rootCmd.AddCommand(importMediaCmd)
}

var importMediaCmd = &cobra.Command{
	Use:   "import-media OUT FILES...",
	Short: "Appends the metadata of each media file to the list \"files\" in OUT",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := tagFiles(args[1:])
		if err != nil {
			return err
		}
		return openDoc(args[0]).Apply(ctx, func(root *typed.Compound) error {
			root.SetCompoundArray("files", append(root.GetCompoundArray("files"), results...))
			return nil
		})
	},
}

// tagFiles runs the taggers over paths concurrently. Results are in the
// same order as paths.
func tagFiles(paths []string) ([]*typed.Compound, error) {
	results := make([]*typed.Compound, len(paths))
	sem := semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0)))
	eg, egctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		i, p := i, p
		if err := sem.Acquire(egctx, 1); err != nil {
			break
		}
		eg.Go(func() error {
			defer sem.Release(1)
			c, err := taggers.FromFile(p)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"path": p, "keys": c.Len()}).Debug("tagged file")
			results[i] = c
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
