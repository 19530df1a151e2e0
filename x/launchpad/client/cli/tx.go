package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// GetTxCmd returns the transaction commands for the launchpad module
func GetTxCmd() *cobra.Command {
	launchpadTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Launchpad transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	launchpadTxCmd.AddCommand(
		CmdCreateCampaign(),
		CmdBuy(),
		CmdFinalize(),
	)

	return launchpadTxCmd
}

// CmdCreateCampaign returns a CLI command handler for creating a campaign
func CmdCreateCampaign() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-campaign [name] [symbol] [target-funding] [settlement-denom] [platform-fee-addr] [venue-kind]",
		Short: "Create a new launchpad campaign",
		Long: `Create a new launchpad campaign. The campaign's full token supply is
minted into module custody and sold on a linear bonding curve against the
settlement denom until the sale allocation is exhausted.

Example:
  $ pawd tx launchpad create-campaign "Paw Meme" PMEME 1000000000000000000000000 uusdt paw1fee... pair --from mykey`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			targetFunding, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid target funding: %s (must be integer)", args[2])
			}

			msg := types.NewMsgCreateCampaign(
				clientCtx.GetFromAddress().String(),
				args[0],
				args[1],
				targetFunding,
				args[3],
				args[4],
				args[5],
			)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdBuy returns a CLI command handler for bonding curve purchases
func CmdBuy() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy [campaign-id] [amount-in]",
		Short: "Buy campaign tokens on the bonding curve",
		Long: `Buy campaign tokens by paying the settlement asset. The purchase is
priced by the curve's average-price formula; an order that would overshoot
the remaining sale allocation is rejected in full.

Example:
  $ pawd tx launchpad buy 1 1000000000000000000000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
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

			msg := types.NewMsgBuy(clientCtx.GetFromAddress().String(), campaignID, amountIn)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdFinalize returns a CLI command handler for campaign finalization
func CmdFinalize() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finalize [campaign-id]",
		Short: "Finalize a funded campaign and deploy venue liquidity",
		Long: `Finalize a funded campaign: distribute token allocations and the
settlement split, then deploy the liquidity share to the campaign's venue.
Only the campaign creator or the governance authority may finalize, and only
once.

Example:
  $ pawd tx launchpad finalize 1 --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			campaignID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid campaign id: %s", args[0])
			}

			msg := types.NewMsgFinalize(clientCtx.GetFromAddress().String(), campaignID)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
