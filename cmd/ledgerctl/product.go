package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tradeledger/asset-transfer/common"
	"github.com/tradeledger/asset-transfer/contracts/product"
	productrpc "github.com/tradeledger/asset-transfer/rpc/product"
)

func newProductCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "ProductTransfer contract operations",
	}

	client := func() *productrpc.Contract { return productrpc.New(e.world) }

	var pincodes []int

	create := &cobra.Command{
		Use:   "create <id> <object> <owner>",
		Short: "Create new product owned physically and virtually by the owner",
		Args:  cobra.ExactArgs(3),
		RunE: withCommit(e, func(cmd *cobra.Command, args []string) error {
			return client().CreateProduct(cmd.Context(), args[0], args[1], pincodes, args[2])
		}),
	}
	create.Flags().IntSliceVar(&pincodes, "pincodes", nil, "Pincodes the product is available at")

	var p product.Product

	update := &cobra.Command{
		Use:   "update <id> <object>",
		Short: "Overwrite existing product",
		Args:  cobra.ExactArgs(2),
		RunE: withCommit(e, func(cmd *cobra.Command, args []string) error {
			p.ID, p.Object, p.Pincodes = args[0], args[1], pincodes
			return client().UpdateProduct(cmd.Context(), p)
		}),
	}
	update.Flags().IntSliceVar(&pincodes, "pincodes", nil, "Pincodes the product is available at")
	update.Flags().StringVar(&p.PhysicalOwner, "physical-owner", "", "Physical owner")
	update.Flags().StringVar(&p.VirtualOwner, "virtual-owner", "", "Virtual owner")
	update.Flags().StringVar(&p.AddressToShip, "address", "", "Shipping address")
	update.Flags().StringVar(&p.TrackingInfo, "tracking", "", "Tracking information")
	update.Flags().BoolVar(&p.Sold, "sold", false, "Sale status")

	transfer := func(use, short string, virtual bool) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <id> <new-owner>",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: withCommit(e, func(cmd *cobra.Command, args []string) error {
				f := client().TransferPhysicalProduct
				if virtual {
					f = client().TransferVirtualProduct
				}
				prev, err := f(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), prev)
				return nil
			}),
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Seed sample products",
			Args:  cobra.NoArgs,
			RunE: withCommit(e, func(cmd *cobra.Command, _ []string) error {
				return client().InitLedger(cmd.Context())
			}),
		},
		create,
		update,
		&cobra.Command{
			Use:   "read <id>",
			Short: "Print product",
			Args:  cobra.ExactArgs(1),
			RunE: withWorld(e, func(cmd *cobra.Command, args []string) error {
				res, err := client().ReadProduct(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			}),
		},
		&cobra.Command{
			Use:   "exists <id>",
			Short: "Check product presence",
			Args:  cobra.ExactArgs(1),
			RunE: withWorld(e, func(cmd *cobra.Command, args []string) error {
				ok, err := client().ProductExists(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ok)
				return nil
			}),
		},
		transfer("transfer-physical", "Change physical owner of the product", false),
		transfer("transfer-virtual", "Change virtual owner of the product", true),
		&cobra.Command{
			Use:   "ship <id> <address>",
			Short: "Set shipping address of the product",
			Args:  cobra.ExactArgs(2),
			RunE: withCommit(e, func(cmd *cobra.Command, args []string) error {
				return client().UpdateAddressToShip(cmd.Context(), args[0], args[1])
			}),
		},
		&cobra.Command{
			Use:   "track <id> <info>",
			Short: "Set tracking information of the product",
			Args:  cobra.ExactArgs(2),
			RunE: withCommit(e, func(cmd *cobra.Command, args []string) error {
				return client().UpdateTrackingInfo(cmd.Context(), args[0], args[1])
			}),
		},
		&cobra.Command{
			Use:   "list [object]",
			Short: "List all records, or products of the object type",
			Args:  cobra.MaximumNArgs(1),
			RunE: withWorld(e, func(cmd *cobra.Command, args []string) error {
				if len(args) == 0 {
					entries, err := client().GetAllProducts(cmd.Context())
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), entries)
				}

				res, err := client().GetAllProductsByObjectType(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			}),
		},
		&cobra.Command{
			Use:   "available <id> <pincode>",
			Short: "Check product availability at the pincode",
			Args:  cobra.ExactArgs(2),
			RunE: withWorld(e, func(cmd *cobra.Command, args []string) error {
				pincode, err := common.ParsePincode(args[1])
				if err != nil {
					return err
				}
				ok, err := client().GetProductAvailabilityByPincode(cmd.Context(), args[0], pincode)
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
