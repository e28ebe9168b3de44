// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr dapp插件注册管理
package pluginmgr

import (
	"github.com/spf13/cobra"
)

// Plugin 插件注册信息
type Plugin struct {
	// Name 插件名称, 同时也是执行器名称
	Name string
	// ExecInit 执行器初始化函数
	ExecInit func(name string)
	// Cmd 插件的命令行入口, 可以为nil
	Cmd func() *cobra.Command
}

var plugins = make(map[string]*Plugin)

// Register 注册插件, 重复注册会panic
func Register(p *Plugin) {
	if p == nil || p.Name == "" {
		panic("pluginmgr: register nil plugin")
	}
	if _, dup := plugins[p.Name]; dup {
		panic("pluginmgr: register called twice for plugin " + p.Name)
	}
	plugins[p.Name] = p
}

// InitExec 初始化所有已注册插件的执行器
func InitExec() {
	for _, p := range plugins {
		if p.ExecInit != nil {
			p.ExecInit(p.Name)
		}
	}
}

// AddCmd 将所有插件的命令挂到根命令下
func AddCmd(rootCmd *cobra.Command) {
	for _, p := range plugins {
		if p.Cmd != nil {
			rootCmd.AddCommand(p.Cmd())
		}
	}
}
