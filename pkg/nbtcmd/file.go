package nbtcmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brendoncarroll/nbtkit/pkg/nbt"
	"github.com/brendoncarroll/nbtkit/pkg/typed"
)

var (
	getType  string
	rmAsUUID bool
)

func init() {
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(rmCmd)

	getCmd.Flags().StringVar(&getType, "type", "string", "value type")
	rmCmd.Flags().BoolVar(&rmAsUUID, "uuid", false, "also remove the legacy Most/Least keys")
}

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Prints a file's root compound",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openDoc(args[0]).Load(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), nbt.Format(c.Tree()))
		return err
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys FILE [PATH]",
	Short: "Lists the keys of the compound at PATH",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := openDoc(args[0]).Load(ctx)
		if err != nil {
			return err
		}
		var p string
		if len(args) > 1 {
			p = args[1]
		}
		c, err := walk(root, splitPath(p), false)
		if err != nil {
			return err
		}
		w := bufio.NewWriter(cmd.OutOrStdout())
		for _, k := range c.Keys() {
			if _, err := fmt.Fprintf(w, "%-24s\t%v\n", k, nbt.TypeOf(c.Get(k))); err != nil {
				return err
			}
		}
		return w.Flush()
	},
}

var getCmd = &cobra.Command{
	Use:   "get FILE PATH",
	Short: "Prints the value at PATH",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		vt, err := lookupType(getType)
		if err != nil {
			return err
		}
		root, err := openDoc(args[0]).Load(ctx)
		if err != nil {
			return err
		}
		parent, key, err := resolve(root, args[1], false)
		if err != nil {
			return err
		}
		s, err := vt.get(parent, key)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
		return err
	},
}

var setCmd = &cobra.Command{
	Use:   "set FILE PATH TYPE VALUE",
	Short: "Sets the value at PATH, creating the file and parent compounds as needed",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		vt, err := lookupType(args[2])
		if err != nil {
			return err
		}
		return openDoc(args[0]).Apply(ctx, func(root *typed.Compound) error {
			parent, key, err := resolve(root, args[1], true)
			if err != nil {
				return err
			}
			return vt.set(parent, key, args[3])
		})
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm FILE PATH",
	Short: "Removes the value at PATH",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return openDoc(args[0]).Apply(ctx, func(root *typed.Compound) error {
			parent, key, err := resolve(root, args[1], false)
			if err != nil {
				return err
			}
			if rmAsUUID {
				parent.RemoveUUID(key)
			} else {
				parent.Remove(key)
			}
			return nil
		})
	},
}
