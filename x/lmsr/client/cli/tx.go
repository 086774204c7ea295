package cli

import (
	"fmt"
	"strconv"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/softmax-labs/softswap/x/lmsr/types"
)

const (
	flagKappa         = "kappa"
	flagSwapFees      = "swap-fees"
	flagProtocolShare = "protocol-share"
	flagLimitRatio    = "limit-ratio"
	flagMinShares     = "min-shares"
	flagMinAmounts    = "min-amounts"
)

// GetTxCmd returns the transaction commands for the lmsr module
func GetTxCmd() *cobra.Command {
	lmsrTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "LMSR market maker transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	lmsrTxCmd.AddCommand(
		CmdCreatePool(),
		CmdSwap(),
		CmdMint(),
		CmdBurn(),
		CmdSwapMint(),
		CmdBurnSwap(),
		CmdWithdrawProtocolFees(),
	)

	return lmsrTxCmd
}

// CmdCreatePool returns a CLI command handler for creating a pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [deposits]",
		Short: "Create a new pool seeded with the given deposits",
		Long: `Create a new pool seeded with two or more assets.

Example:
  $ softswapd tx lmsr create-pool 1000000uatom,2000000uusdc --from mykey
  $ softswapd tx lmsr create-pool 1000000uatom,2000000uusdc,500000uosmo --kappa 0.05 --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			deposits, err := sdk.ParseCoinsNormalized(args[0])
			if err != nil {
				return fmt.Errorf("invalid deposits: %w", err)
			}

			kappa := math.LegacyDec{}
			if s, _ := cmd.Flags().GetString(flagKappa); s != "" {
				kappa, err = math.LegacyNewDecFromStr(s)
				if err != nil {
					return fmt.Errorf("invalid kappa: %w", err)
				}
			}

			var swapFees []math.LegacyDec
			if s, _ := cmd.Flags().GetString(flagSwapFees); s != "" {
				for _, part := range strings.Split(s, ",") {
					fee, err := math.LegacyNewDecFromStr(strings.TrimSpace(part))
					if err != nil {
						return fmt.Errorf("invalid swap fee %q: %w", part, err)
					}
					swapFees = append(swapFees, fee)
				}
			}

			protocolShare := math.LegacyDec{}
			if s, _ := cmd.Flags().GetString(flagProtocolShare); s != "" {
				protocolShare, err = math.LegacyNewDecFromStr(s)
				if err != nil {
					return fmt.Errorf("invalid protocol share: %w", err)
				}
			}

			msg := types.NewMsgCreatePool(clientCtx.GetFromAddress().String(), deposits, kappa, swapFees, protocolShare)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagKappa, "", "liquidity sensitivity, defaults to the module parameter")
	cmd.Flags().String(flagSwapFees, "", "comma-separated per-asset fees in sorted denom order")
	cmd.Flags().String(flagProtocolShare, "", "protocol share of collected fees")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwap returns a CLI command handler for swapping against a pool
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [pool-id] [denom-in] [amount-in] [denom-out] [min-amount-out]",
		Short: "Swap one pool asset for another",
		Long: `Swap one pool asset for another. With --limit-ratio the trade is
truncated at the point where the in/out price ratio reaches the limit and
the unused input stays with the trader.

Example:
  $ softswapd tx lmsr swap 1 uatom 1000000 uusdc 950000 --from mykey
  $ softswapd tx lmsr swap 1 uatom 1000000 uusdc 0 --limit-ratio 1.2 --from mykey`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			amountIn, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[2])
			}
			minAmountOut, ok := math.NewIntFromString(args[4])
			if !ok {
				return fmt.Errorf("invalid min-amount-out: %s (must be integer)", args[4])
			}

			msg := types.NewMsgSwap(clientCtx.GetFromAddress().String(), poolID, args[1], args[3], amountIn, minAmountOut)
			if s, _ := cmd.Flags().GetString(flagLimitRatio); s != "" {
				limit, err := math.LegacyNewDecFromStr(s)
				if err != nil {
					return fmt.Errorf("invalid limit ratio: %w", err)
				}
				msg.LimitRatio = limit
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagLimitRatio, "", "maximum acceptable in/out price ratio")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdMint returns a CLI command handler for proportional deposits
func CmdMint() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint [pool-id] [amount]",
		Short: "Deposit a total amount pro rata across every pool asset",
		Long: `Deposit a total amount, spread pro rata across every pool asset, and
receive the matching growth in LP shares.

Example:
  $ softswapd tx lmsr mint 1 100000 --min-shares 99000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[1])
			}

			minShares := math.ZeroInt()
			if s, _ := cmd.Flags().GetString(flagMinShares); s != "" {
				minShares, ok = math.NewIntFromString(s)
				if !ok {
					return fmt.Errorf("invalid min shares: %s (must be integer)", s)
				}
			}

			msg := types.NewMsgMint(clientCtx.GetFromAddress().String(), poolID, amount, minShares)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagMinShares, "", "minimum acceptable share mint")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdBurn returns a CLI command handler for proportional withdrawals
func CmdBurn() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "burn [pool-id] [shares-in]",
		Short: "Burn LP shares for a pro-rata payout of every pool asset",
		Long: `Burn LP shares and receive every pool asset pro rata.

Example:
  $ softswapd tx lmsr burn 1 50000 --min-amounts 49000uatom,98000uusdc --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			sharesIn, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid shares-in: %s (must be integer)", args[1])
			}

			minAmounts := sdk.NewCoins()
			if s, _ := cmd.Flags().GetString(flagMinAmounts); s != "" {
				minAmounts, err = sdk.ParseCoinsNormalized(s)
				if err != nil {
					return fmt.Errorf("invalid min amounts: %w", err)
				}
			}

			msg := types.NewMsgBurn(clientCtx.GetFromAddress().String(), poolID, sharesIn, minAmounts)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagMinAmounts, "", "per-asset payout floors")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapMint returns a CLI command handler for single-asset deposits
func CmdSwapMint() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-mint [pool-id] [deposit] [min-shares-out]",
		Short: "Deposit a single asset for LP shares",
		Long: `Deposit a single pool asset; the pool converts it internally into a
uniform growth of all balances and mints the matching LP shares. Unused
input is refunded.

Example:
  $ softswapd tx lmsr swap-mint 1 1000000uatom 45000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			deposit, err := sdk.ParseCoinNormalized(args[1])
			if err != nil {
				return fmt.Errorf("invalid deposit: %w", err)
			}
			minSharesOut, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid min-shares-out: %s (must be integer)", args[2])
			}

			msg := types.NewMsgSwapMint(clientCtx.GetFromAddress().String(), poolID, deposit, minSharesOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdBurnSwap returns a CLI command handler for single-asset withdrawals
func CmdBurnSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "burn-swap [pool-id] [shares-in] [denom-out] [min-amount-out]",
		Short: "Burn LP shares for a payout in a single asset",
		Long: `Burn LP shares and receive the whole payout in one pool asset.

Example:
  $ softswapd tx lmsr burn-swap 1 50000 uatom 95000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			sharesIn, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid shares-in: %s (must be integer)", args[1])
			}
			minAmountOut, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid min-amount-out: %s (must be integer)", args[3])
			}

			msg := types.NewMsgBurnSwap(clientCtx.GetFromAddress().String(), poolID, sharesIn, args[2], minAmountOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawProtocolFees returns a CLI command handler for fee withdrawal
func CmdWithdrawProtocolFees() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-protocol-fees [recipient] [denoms]",
		Short: "Withdraw accrued protocol fees (authority only)",
		Long: `Withdraw accrued protocol fees to the recipient. Omitting denoms
withdraws the whole ledger.

Example:
  $ softswapd tx lmsr withdraw-protocol-fees cosmos1... uatom,uusdc --from authority`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			var denoms []string
			if len(args) == 2 && args[1] != "" {
				denoms = strings.Split(args[1], ",")
			}

			msg := types.NewMsgWithdrawProtocolFees(clientCtx.GetFromAddress().String(), args[0], denoms)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
