package nbtcmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brendoncarroll/nbtkit/pkg/typed"
)

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storePutCmd)
	storeCmd.AddCommand(storeGetCmd)
	storeCmd.AddCommand(storeLsCmd)
	storeCmd.AddCommand(storeRmCmd)
	storeCmd.AddCommand(storeFindCmd)
}

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manages compounds in the database",
}

var storePutCmd = &cobra.Command{
	Use:   "put NAME FILE",
	Short: "Copies a file's root compound into the database",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openDoc(args[1]).Load(ctx)
		if err != nil {
			return err
		}
		s, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()
		fp, err := s.Put(ctx, args[0], c)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), fp)
		return err
	},
}

var storeGetCmd = &cobra.Command{
	Use:   "get NAME [FILE]",
	Short: "Prints a stored compound, or writes it to FILE",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()
		c, err := s.Get(ctx, args[0])
		if err != nil {
			return err
		}
		if len(args) < 2 {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c)
			return err
		}
		return openDoc(args[1]).Apply(ctx, func(root *typed.Compound) error {
			return root.Adopt(c)
		})
	},
}

var storeLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Lists stored compounds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()
		ents, err := s.List(ctx)
		if err != nil {
			return err
		}
		w := bufio.NewWriter(cmd.OutOrStdout())
		fmtStr := "%-32s\t%-8v\t%v\n"
		if _, err := fmt.Fprintf(w, fmtStr, "NAME", "SIZE", "FINGERPRINT"); err != nil {
			return err
		}
		for _, ent := range ents {
			if _, err := fmt.Fprintf(w, fmtStr, ent.Name, ent.Size, ent.Fingerprint); err != nil {
				return err
			}
		}
		return w.Flush()
	},
}

var storeRmCmd = &cobra.Command{
	Use:   "rm NAME",
	Short: "Deletes a stored compound",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()
		return s.Delete(ctx, args[0])
	},
}

var storeFindCmd = &cobra.Command{
	Use:   "find KEY VALUE",
	Short: "Lists stored compounds whose string at KEY is VALUE",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()
		names, err := s.Find(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		w := bufio.NewWriter(cmd.OutOrStdout())
		for _, name := range names {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}
		return w.Flush()
	},
}
