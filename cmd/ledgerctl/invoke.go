package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tradeledger/asset-transfer/config"
)

func newMethodsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List registered contract operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(e.cfgPath)
			if err != nil {
				return err
			}

			r, err := newRegistry(cfg)
			if err != nil {
				return err
			}

			for _, c := range r.Contracts() {
				for _, m := range r.Methods(c) {
					fmt.Fprintln(cmd.OutOrStdout(), m)
				}
			}

			return nil
		},
	}
}

// newInvokeCmd returns command executing arbitrary operation by name. The
// result payload is printed as is.
func newInvokeCmd(e *env, use, short string, commit bool) *cobra.Command {
	wrap := withWorld
	if commit {
		wrap = withCommit
	}

	return &cobra.Command{
		Use:   use + " <method> [args...]",
		Short: short,
		Long: short + `.

Method is addressed as Contract:Method (e.g. ProductTransfer:UpdateAsset) or by
bare name resolved against the default contract. Arguments are passed as is:
pincode lists as JSON arrays, pincodes as decimals, flags as true/false.`,
		Args: cobra.MinimumNArgs(1),
		RunE: wrap(e, func(cmd *cobra.Command, args []string) error {
			invoke := e.world.Call
			if commit {
				invoke = e.world.Submit
			}

			payload, err := invoke(cmd.Context(), args[0], args[1:]...)
			if err != nil {
				return err
			}

			if len(payload) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			}

			return nil
		}),
	}
}
