// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package challenge

import (
	"github.com/usdfg/challenge/plugin/dapp/challenge/commands"
	"github.com/usdfg/challenge/plugin/dapp/challenge/executor"
	ct "github.com/usdfg/challenge/plugin/dapp/challenge/types"
	"github.com/usdfg/challenge/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.Plugin{
		Name:     ct.ChallengeX,
		ExecInit: executor.Init,
		Cmd:      commands.ChallengeCmd,
	})
}
