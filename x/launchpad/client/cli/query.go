package cli

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// GetQueryCmd returns the cli query commands for the launchpad module
func GetQueryCmd() *cobra.Command {
	launchpadQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the launchpad module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	launchpadQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryCampaign(),
		GetCmdQueryCampaigns(),
		GetCmdQueryQuote(),
		GetCmdQueryCurrentPrice(),
		GetCmdQueryAllocations(),
	)

	return launchpadQueryCmd
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current launchpad module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(context.Background(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryCampaign returns the command to query a campaign by ID
func GetCmdQueryCampaign() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaign [campaign-id]",
		Short: "Query a launchpad campaign by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			campaignID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid campaign id: %s", args[0])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Campaign(context.Background(), &types.QueryCampaignRequest{CampaignId: campaignID})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryCampaigns returns the command to list campaigns
func GetCmdQueryCampaigns() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaigns",
		Short: "List launchpad campaigns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			offset, err := cmd.Flags().GetUint64("offset")
			if err != nil {
				return err
			}
			limit, err := cmd.Flags().GetUint64("limit")
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Campaigns(context.Background(), &types.QueryCampaignsRequest{
				Offset: offset,
				Limit:  limit,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	cmd.Flags().Uint64("offset", 0, "pagination offset")
	cmd.Flags().Uint64("limit", 100, "pagination limit")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryQuote returns the command to price a hypothetical purchase
func GetCmdQueryQuote() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote [campaign-id] [amount-in]",
		Short: "Quote a purchase against a campaign's bonding curve",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			campaignID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid campaign id: %s", args[0])
			}

			amountIn, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[1])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Quote(context.Background(), &types.QueryQuoteRequest{
				CampaignId: campaignID,
				AmountIn:   amountIn,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryCurrentPrice returns the command to query a campaign's spot price
func GetCmdQueryCurrentPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "current-price [campaign-id]",
		Short: "Query the spot price on a campaign's bonding curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			campaignID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid campaign id: %s", args[0])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.CurrentPrice(context.Background(), &types.QueryCurrentPriceRequest{CampaignId: campaignID})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryAllocations returns the command to query a campaign's allocation table
func GetCmdQueryAllocations() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allocations [campaign-id]",
		Short: "Query a campaign's supply allocation table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			campaignID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid campaign id: %s", args[0])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Allocations(context.Background(), &types.QueryAllocationsRequest{CampaignId: campaignID})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
