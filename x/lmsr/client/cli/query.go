package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	abci "github.com/cometbft/cometbft/abci/types"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/kv"

	"github.com/softmax-labs/softswap/x/lmsr/lmsrmath"
	"github.com/softmax-labs/softswap/x/lmsr/types"
)

// GetQueryCmd returns the cli query commands for the lmsr module. State is
// read straight from the module store and decoded with the module codec;
// swap quotes are computed client-side with the same pricing kernel the
// chain runs.
func GetQueryCmd() *cobra.Command {
	lmsrQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the lmsr module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	lmsrQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryPool(),
		GetCmdQueryPools(),
		GetCmdQueryShares(),
		GetCmdQueryQuote(),
		GetCmdQueryProtocolFees(),
	)

	return lmsrQueryCmd
}

func queryStore(clientCtx client.Context, key []byte) ([]byte, error) {
	res, _, err := clientCtx.QueryStore(key, types.StoreKey)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func querySubspace(clientCtx client.Context, prefix []byte) ([]kv.Pair, error) {
	resp, err := clientCtx.QueryABCI(abci.RequestQuery{
		Path: fmt.Sprintf("/store/%s/subspace", types.StoreKey),
		Data: prefix,
	})
	if err != nil {
		return nil, err
	}
	var pairs []kv.Pair
	if err := types.ModuleCdc.LegacyAmino.UnmarshalJSON(resp.Value, &pairs); err != nil {
		return nil, err
	}
	return pairs, nil
}

func getPool(clientCtx client.Context, poolID uint64) (types.Pool, error) {
	bz, err := queryStore(clientCtx, types.GetPoolKey(poolID))
	if err != nil {
		return types.Pool{}, err
	}
	if len(bz) == 0 {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	var pool types.Pool
	if err := types.ModuleCdc.LegacyAmino.UnmarshalJSON(bz, &pool); err != nil {
		return types.Pool{}, err
	}
	return pool, nil
}

func printJSON(clientCtx client.Context, v interface{}) error {
	out, err := types.ModuleCdc.LegacyAmino.MarshalJSONIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(out) + "\n")
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current lmsr module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, err := queryStore(clientCtx, types.ParamsKey)
			if err != nil {
				return err
			}
			params := types.DefaultParams()
			if len(bz) != 0 {
				if err := types.ModuleCdc.LegacyAmino.UnmarshalJSON(bz, &params); err != nil {
					return err
				}
			}
			return printJSON(clientCtx, types.QueryParamsResponse{Params: params})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPool returns the command to query a pool by ID
func GetCmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [pool-id]",
		Short: "Query a pool by ID",
		Long: `Query a pool together with its derived liquidity scale.

Example:
  $ softswapd query lmsr pool 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			pool, err := getPool(clientCtx, poolID)
			if err != nil {
				return err
			}
			scale, err := lmsrmath.LiquidityScale(pool.BalancesDec(), pool.Kappa)
			if err != nil {
				return err
			}
			return printJSON(clientCtx, types.QueryPoolResponse{Pool: pool, LiquidityScale: scale})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPools returns the command to query all pools
func GetCmdQueryPools() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "Query all pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pairs, err := querySubspace(clientCtx, types.PoolKey)
			if err != nil {
				return err
			}
			pools := make([]types.Pool, 0, len(pairs))
			for _, pair := range pairs {
				var pool types.Pool
				if err := types.ModuleCdc.LegacyAmino.UnmarshalJSON(pair.Value, &pool); err != nil {
					return err
				}
				pools = append(pools, pool)
			}
			return printJSON(clientCtx, types.QueryPoolsResponse{Pools: pools})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryShares returns the command to query a provider's shares
func GetCmdQueryShares() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shares [pool-id] [provider]",
		Short: "Query a provider's LP shares in a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			pool, err := getPool(clientCtx, poolID)
			if err != nil {
				return err
			}

			shares := math.ZeroInt()
			bz, err := queryStore(clientCtx, types.GetSharesKey(poolID, args[1]))
			if err != nil {
				return err
			}
			if len(bz) != 0 {
				if err := types.ModuleCdc.LegacyAmino.UnmarshalJSON(bz, &shares); err != nil {
					return err
				}
			}
			return printJSON(clientCtx, types.QuerySharesResponse{
				Shares:      shares,
				TotalShares: pool.TotalShares,
			})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryQuote returns the command to price a swap without executing it
func GetCmdQueryQuote() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote [pool-id] [denom-in] [amount-in] [denom-out]",
		Short: "Price a swap without executing it",
		Long: `Price a swap against the current pool state using the on-chain
pricing kernel. The optional --limit-ratio truncates the quote the same way
a limit swap would.

Example:
  $ softswapd query lmsr quote 1 uatom 1000000 uusdc
  $ softswapd query lmsr quote 1 uatom 1000000 uusdc --limit-ratio 1.2`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
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

			pool, err := getPool(clientCtx, poolID)
			if err != nil {
				return err
			}
			i, ok := pool.AssetIndex(args[1])
			if !ok {
				return types.ErrAssetNotInPool.Wrapf("%s not in pool %d", args[1], poolID)
			}
			j, ok := pool.AssetIndex(args[3])
			if !ok {
				return types.ErrAssetNotInPool.Wrapf("%s not in pool %d", args[3], poolID)
			}

			q := pool.BalancesDec()
			b, err := lmsrmath.LiquidityScale(q, pool.Kappa)
			if err != nil {
				return err
			}
			fEff, err := lmsrmath.EffectivePairFee(pool.FeeFor(i), pool.FeeFor(j))
			if err != nil {
				return err
			}
			net := lmsrmath.AfterFee(math.LegacyNewDecFromInt(amountIn), fEff)

			var quote lmsrmath.Quote
			if s, _ := cmd.Flags().GetString(flagLimitRatio); s != "" {
				limit, err := math.LegacyNewDecFromStr(s)
				if err != nil {
					return fmt.Errorf("invalid limit ratio: %w", err)
				}
				quote, err = lmsrmath.ToLimit(q, i, j, limit, b)
				if err != nil {
					return err
				}
				if quote.AmountIn.GT(net) {
					quote, err = lmsrmath.ExactIn(q, i, j, net, b)
					if err != nil {
						return err
					}
				}
			} else {
				quote, err = lmsrmath.ExactIn(q, i, j, net, b)
				if err != nil {
					return err
				}
			}

			fee := math.LegacyNewDecFromInt(amountIn).Sub(quote.AmountIn).Ceil().TruncateInt()
			return printJSON(clientCtx, types.QueryQuoteResponse{
				AmountIn:  amountIn,
				AmountOut: quote.AmountOut.TruncateInt(),
				Fee:       fee,
				Capped:    quote.Capped,
				Limited:   quote.Limited,
			})
		},
	}

	cmd.Flags().String(flagLimitRatio, "", "maximum acceptable in/out price ratio")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryProtocolFees returns the command to query the fee ledger
func GetCmdQueryProtocolFees() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "protocol-fees",
		Short: "Query the accrued protocol fee ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pairs, err := querySubspace(clientCtx, types.ProtocolFeesKey)
			if err != nil {
				return err
			}
			fees := sdk.NewCoins()
			for _, pair := range pairs {
				denom := string(pair.Key[len(types.ProtocolFeesKey):])
				var amount math.Int
				if err := types.ModuleCdc.LegacyAmino.UnmarshalJSON(pair.Value, &amount); err != nil {
					return err
				}
				fees = fees.Add(sdk.NewCoin(denom, amount))
			}
			return printJSON(clientCtx, types.QueryProtocolFeesResponse{Fees: fees})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
