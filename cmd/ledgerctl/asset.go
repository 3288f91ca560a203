package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tradeledger/asset-transfer/common"
	assetrpc "github.com/tradeledger/asset-transfer/rpc/asset"
)

func newAssetCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "AssetTransfer contract operations",
	}

	client := func() *assetrpc.Contract { return assetrpc.New(e.world) }

	var pincodes []int

	create := &cobra.Command{
		Use:   "create <id> <object> <owner>",
		Short: "Create new asset",
		Args:  cobra.ExactArgs(3),
		RunE: withCommit(e, func(cmd *cobra.Command, args []string) error {
			return client().CreateAsset(cmd.Context(), args[0], args[1], pincodes, args[2])
		}),
	}
	create.Flags().IntSliceVar(&pincodes, "pincodes", nil, "Pincodes the asset is available at")

	update := &cobra.Command{
		Use:   "update <id> <object> <owner>",
		Short: "Overwrite existing asset",
		Args:  cobra.ExactArgs(3),
		RunE: withCommit(e, func(cmd *cobra.Command, args []string) error {
			return client().UpdateAsset(cmd.Context(), args[0], args[1], pincodes, args[2])
		}),
	}
	update.Flags().IntSliceVar(&pincodes, "pincodes", nil, "Pincodes the asset is available at")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Seed sample assets",
			Args:  cobra.NoArgs,
			RunE: withCommit(e, func(cmd *cobra.Command, _ []string) error {
				return client().InitLedger(cmd.Context())
			}),
		},
		create,
		update,
		&cobra.Command{
			Use:   "read <id>",
			Short: "Print asset",
			Args:  cobra.ExactArgs(1),
			RunE: withWorld(e, func(cmd *cobra.Command, args []string) error {
				a, err := client().ReadAsset(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), a)
			}),
		},
		&cobra.Command{
			Use:   "exists <id>",
			Short: "Check asset presence",
			Args:  cobra.ExactArgs(1),
			RunE: withWorld(e, func(cmd *cobra.Command, args []string) error {
				ok, err := client().AssetExists(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ok)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete asset",
			Args:  cobra.ExactArgs(1),
			RunE: withCommit(e, func(cmd *cobra.Command, args []string) error {
				return client().DeleteAsset(cmd.Context(), args[0])
			}),
		},
		&cobra.Command{
			Use:   "transfer <id> <new-owner> <shipping-address>",
			Short: "Sell asset to the new owner",
			Args:  cobra.ExactArgs(3),
			RunE: withCommit(e, func(cmd *cobra.Command, args []string) error {
				prev, err := client().TransferAsset(cmd.Context(), args[0], args[1], args[2])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), prev)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "list [object]",
			Short: "List all records, or unsold assets of the object",
			Args:  cobra.MaximumNArgs(1),
			RunE: withWorld(e, func(cmd *cobra.Command, args []string) error {
				if len(args) == 0 {
					entries, err := client().GetAllAssets(cmd.Context())
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), entries)
				}

				res, err := client().GetAllAssetsByObject(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			}),
		},
		&cobra.Command{
			Use:   "available <id> <pincode>",
			Short: "Check asset availability at the pincode",
			Args:  cobra.ExactArgs(2),
			RunE: withWorld(e, func(cmd *cobra.Command, args []string) error {
				pincode, err := common.ParsePincode(args[1])
				if err != nil {
					return err
				}
				ok, err := client().GetAssetAvailabilityByPincode(cmd.Context(), args[0], pincode)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ok)
				return nil
			}),
		},
	)

	return cmd
}
