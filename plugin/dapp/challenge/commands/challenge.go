// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands challenge命令行, 生成原始交易的hex编码
package commands

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/usdfg/challenge/common"
	ct "github.com/usdfg/challenge/plugin/dapp/challenge/types"
	drivers "github.com/usdfg/challenge/system/dapp"
	"github.com/usdfg/challenge/types"
)

// ChallengeCmd challenge根命令
func ChallengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Create challenge transaction",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		adminInitCmd(),
		adminUpdateCmd(),
		adminRevokeCmd(),
		oracleInitCmd(),
		priceUpdateCmd(),
		createCmd(),
		acceptCmd(),
		resolveCmd(),
		refundCmd(),
	)
	return cmd
}

//生成未签名交易并以hex输出
func outputTx(action *ct.ChallengeAction) {
	tx := &types.Transaction{
		Execer:  []byte(ct.ChallengeX),
		Payload: types.Encode(action),
		Fee:     types.Coin / 100,
		Nonce:   rand.New(rand.NewSource(time.Now().UnixNano())).Int63(),
		To:      drivers.ExecAddress(ct.ChallengeX),
	}
	fmt.Println(common.ToHex(types.Encode(tx)))
}

// parseCoinAmount 把十进制的币数量换算成最小单位
func parseCoinAmount(amount string) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, err
	}
	units := d.Mul(decimal.New(types.Coin, 0))
	if !units.IsInteger() {
		return 0, types.ErrAmount
	}
	return units.IntPart(), nil
}

func adminInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin_init",
		Short: "Initialize admin registry",
		Run:   adminInit,
	}
	cmd.Flags().StringP("addr", "a", "", "admin address (default tx signer)")
	return cmd
}

func adminInit(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	action := &ct.ChallengeAction{
		Ty:    ct.ChallengeActionAdminInit,
		Value: &ct.ChallengeAction_AdminInit{AdminInit: &ct.ChallengeAdminInit{AdminAddr: addr}},
	}
	outputTx(action)
}

func adminUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin_update",
		Short: "Transfer admin to a new address",
		Run:   adminUpdate,
	}
	cmd.Flags().StringP("addr", "a", "", "new admin address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func adminUpdate(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	action := &ct.ChallengeAction{
		Ty:    ct.ChallengeActionAdminUpdate,
		Value: &ct.ChallengeAction_AdminUpdate{AdminUpdate: &ct.ChallengeAdminUpdate{NewAdminAddr: addr}},
	}
	outputTx(action)
}

func adminRevokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin_revoke",
		Short: "Revoke admin permanently",
		Run:   adminRevoke,
	}
	return cmd
}

func adminRevoke(cmd *cobra.Command, args []string) {
	action := &ct.ChallengeAction{
		Ty:    ct.ChallengeActionAdminRevoke,
		Value: &ct.ChallengeAction_AdminRevoke{AdminRevoke: &ct.ChallengeAdminRevoke{}},
	}
	outputTx(action)
}

func oracleInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oracle_init",
		Short: "Initialize price oracle",
		Run:   oracleInit,
	}
	cmd.Flags().Int64P("price", "p", 0, "price in fiat cents per coin")
	cmd.MarkFlagRequired("price")
	return cmd
}

func oracleInit(cmd *cobra.Command, args []string) {
	price, _ := cmd.Flags().GetInt64("price")
	action := &ct.ChallengeAction{
		Ty:    ct.ChallengeActionOracleInit,
		Value: &ct.ChallengeAction_OracleInit{OracleInit: &ct.ChallengeOracleInit{Price: price}},
	}
	outputTx(action)
}

func priceUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price_update",
		Short: "Update oracle price",
		Run:   priceUpdate,
	}
	cmd.Flags().Int64P("price", "p", 0, "price in fiat cents per coin")
	cmd.MarkFlagRequired("price")
	return cmd
}

func priceUpdate(cmd *cobra.Command, args []string) {
	price, _ := cmd.Flags().GetInt64("price")
	action := &ct.ChallengeAction{
		Ty:    ct.ChallengeActionPriceUpdate,
		Value: &ct.ChallengeAction_PriceUpdate{PriceUpdate: &ct.ChallengePriceUpdate{Price: price}},
	}
	outputTx(action)
}

func createCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a challenge with an entry fee",
		Run:   create,
	}
	cmd.Flags().StringP("amount", "a", "", "entry fee in coins")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("seed", "s", "", "challenge seed (default random uuid)")
	return cmd
}

func create(cmd *cobra.Command, args []string) {
	amount, _ := cmd.Flags().GetString("amount")
	seed, _ := cmd.Flags().GetString("seed")
	entryFee, err := parseCoinAmount(amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid amount:", err)
		return
	}
	if seed == "" {
		seed = uuid.New().String()
	}
	action := &ct.ChallengeAction{
		Ty:    ct.ChallengeActionCreate,
		Value: &ct.ChallengeAction_Create{Create: &ct.ChallengeCreate{EntryFee: entryFee, Seed: seed}},
	}
	outputTx(action)
}

func acceptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept",
		Short: "Accept an open challenge",
		Run:   accept,
	}
	cmd.Flags().StringP("id", "i", "", "challenge id")
	cmd.MarkFlagRequired("id")
	return cmd
}

func accept(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	action := &ct.ChallengeAction{
		Ty:    ct.ChallengeActionAccept,
		Value: &ct.ChallengeAction_Accept{Accept: &ct.ChallengeAccept{ChallengeId: id}},
	}
	outputTx(action)
}

func resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a challenge and pay the winner",
		Run:   resolve,
	}
	cmd.Flags().StringP("id", "i", "", "challenge id")
	cmd.MarkFlagRequired("id")
	cmd.Flags().StringP("winner", "w", "", "winner address")
	cmd.MarkFlagRequired("winner")
	return cmd
}

func resolve(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	winner, _ := cmd.Flags().GetString("winner")
	action := &ct.ChallengeAction{
		Ty:    ct.ChallengeActionResolve,
		Value: &ct.ChallengeAction_Resolve{Resolve: &ct.ChallengeResolve{ChallengeId: id, Winner: winner}},
	}
	outputTx(action)
}

func refundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refund",
		Short: "Claim refund for an expired unaccepted challenge",
		Run:   refund,
	}
	cmd.Flags().StringP("id", "i", "", "challenge id")
	cmd.MarkFlagRequired("id")
	return cmd
}

func refund(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	action := &ct.ChallengeAction{
		Ty:    ct.ChallengeActionRefund,
		Value: &ct.ChallengeAction_Refund{Refund: &ct.ChallengeRefund{ChallengeId: id}},
	}
	outputTx(action)
}
