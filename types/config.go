// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config 模块运行配置
type Config struct {
	Title      string `toml:"title"`
	CoinSymbol string `toml:"coinSymbol"`
	Log        *Log   `toml:"log"`
	DB         *DB    `toml:"db"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，为空时日志打印到标准输出
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize int `toml:"maxFileSize"`
	// 最多保存的历史日志文件个数
	MaxBackups int `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge int `toml:"maxAge"`
}

// DB 状态数据库配置
type DB struct {
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

// InitCfg 初始化配置
func InitCfg(path string) (*Config, error) {
	var cfg Config
	if _, err := tml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config file %s", path)
	}
	if cfg.CoinSymbol == "" {
		cfg.CoinSymbol = CoinSymbol
	}
	if cfg.Log == nil {
		cfg.Log = &Log{Loglevel: "info", LogConsoleLevel: "info"}
	}
	if cfg.DB == nil {
		cfg.DB = &DB{Driver: "leveldb", DbPath: "datadir", DbCache: 64}
	}
	return &cfg, nil
}
