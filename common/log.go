// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"os"

	"github.com/inconshreveable/log15"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetLogLevel 设置log输出级别
func SetLogLevel(logLevel string) {
	resetWithLogLevel(logLevel)
}

// SetFileLog 日志输出到文件，按大小滚动
func SetFileLog(file, logLevel, logConsoleLevel string, maxSize, maxBackups, maxAge int) {
	if file == "" {
		resetWithLogLevel(logLevel)
		return
	}
	stdouth := log15.LvlFilterHandler(
		getLevel(logConsoleLevel),
		log15.StreamHandler(os.Stdout, log15.TerminalFormat()),
	)
	rotate := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		LocalTime:  true,
	}
	fileh := log15.LvlFilterHandler(
		getLevel(logLevel),
		log15.StreamHandler(rotate, log15.LogfmtFormat()),
	)
	log15.Root().SetHandler(log15.MultiHandler(stdouth, fileh))
}

func resetWithLogLevel(logLevel string) {
	mainHandler := log15.LvlFilterHandler(
		getLevel(logLevel),
		log15.StreamHandler(os.Stdout, log15.TerminalFormat()),
	)
	log15.Root().SetHandler(mainHandler)
}

func getLevel(lvlString string) log15.Lvl {
	lvl, err := log15.LvlFromString(lvlString)
	if err != nil {
		//默认error级别
		return log15.LvlError
	}
	return lvl
}

// New new a logger module
func New(ctx ...interface{}) log15.Logger {
	return log15.Root().New(ctx...)
}
