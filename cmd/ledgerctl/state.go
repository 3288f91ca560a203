package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tradeledger/asset-transfer/ledger"
	"github.com/tradeledger/asset-transfer/snapshot"
	"go.uber.org/zap"
)

func newStateHashCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "statehash",
		Short: "Print digest of the world state",
		Args:  cobra.NoArgs,
		RunE: withWorld(e, func(cmd *cobra.Command, _ []string) error {
			h, err := e.world.StateHash()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ledger.EncodeStateHash(h))

			return nil
		}),
	}
}

func newDumpCmd(e *env) *cobra.Command {
	var (
		dir   string
		label string
		epoch uint64
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write world state snapshot into the directory",
		Args:  cobra.NoArgs,
		RunE: withWorld(e, func(cmd *cobra.Command, _ []string) error {
			if epoch == 0 {
				epoch = uint64(time.Now().Unix())
			}

			err := os.MkdirAll(dir, 0700)
			if err != nil {
				return fmt.Errorf("create snapshot dir: %w", err)
			}

			id := snapshot.ID{Label: label, Epoch: epoch}

			c, err := snapshot.NewCreator(dir, id)
			if err != nil {
				return fmt.Errorf("init snapshot: %w", err)
			}

			defer c.Close()

			err = e.world.Export(c.Write)
			if err != nil {
				return fmt.Errorf("export world state: %w", err)
			}

			h, err := c.Flush()
			if err != nil {
				return fmt.Errorf("flush snapshot: %w", err)
			}

			e.log.Info("snapshot written", zap.Stringer("id", id), zap.String("stateHash", h))
			fmt.Fprintln(cmd.OutOrStdout(), id.String(), h)

			return nil
		}),
	}

	cmd.Flags().StringVar(&dir, "dir", "snapshots", "Directory of snapshot files")
	cmd.Flags().StringVar(&label, "label", "", "Label of the world state source (e.g. 'staging')")
	cmd.Flags().Uint64Var(&epoch, "epoch", 0, "Snapshot epoch, current Unix time if unset")
	_ = cmd.MarkFlagRequired("label")

	return cmd
}

func newRestoreCmd(e *env) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "restore <label>-<epoch>",
		Short: "Import world state snapshot from the directory",
		Long: `Import world state snapshot from the directory.

Snapshot integrity is checked against its manifest before any item is written.
Restored items are written over the existing world state.`,
		Args: cobra.ExactArgs(1),
		RunE: withCommit(e, func(cmd *cobra.Command, args []string) error {
			id, err := snapshot.ParseID(args[0])
			if err != nil {
				return err
			}

			r, err := snapshot.Open(dir, id)
			if err != nil {
				return fmt.Errorf("open snapshot: %w", err)
			}

			err = e.world.Import(cmd.Context(), func(put func(string, []byte) error) error {
				return r.IterateState(put)
			})
			if err != nil {
				return fmt.Errorf("import world state: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), r.Len(), r.StateHash())

			return nil
		}),
	}

	cmd.Flags().StringVar(&dir, "dir", "snapshots", "Directory of snapshot files")

	return cmd
}

func newDumpsCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "dumps",
		Short: "List world state snapshots in the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return snapshot.IterateDumps(dir, func(id snapshot.ID, r *snapshot.Reader) {
				fmt.Fprintln(cmd.OutOrStdout(), id.String(), r.Len(), r.StateHash())
			})
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "snapshots", "Directory of snapshot files")

	return cmd
}
