// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// challenge-cli 生成challenge执行器的原始交易
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/usdfg/challenge/common"
	_ "github.com/usdfg/challenge/plugin"
	"github.com/usdfg/challenge/pluginmgr"
	"github.com/usdfg/challenge/types"
)

var rootCmd = &cobra.Command{
	Use:   "challenge-cli",
	Short: "challenge transaction tool",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		confPath, _ := cmd.Flags().GetString("conf")
		if confPath == "" {
			return
		}
		cfg, err := types.InitCfg(confPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if cfg.Log.LogFile != "" {
			common.SetFileLog(cfg.Log.LogFile, cfg.Log.Loglevel, cfg.Log.LogConsoleLevel,
				cfg.Log.MaxFileSize, cfg.Log.MaxBackups, cfg.Log.MaxAge)
		} else {
			common.SetLogLevel(cfg.Log.Loglevel)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringP("conf", "c", "", "configuration file")
	pluginmgr.InitExec()
	pluginmgr.AddCmd(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
