// Copyright USDFG Project 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// chain level errors shared by every executor
var (
	ErrNotFound          = errors.New("ErrNotFound")
	ErrActionNotSupport  = errors.New("ErrActionNotSupport")
	ErrAmount            = errors.New("ErrAmount")
	ErrNoBalance         = errors.New("ErrNoBalance")
	ErrBalanceLessThanTenTimesFee = errors.New("ErrBalanceLessThanTenTimesFee")
	ErrSendSameToRecv    = errors.New("ErrSendSameToRecv")
	ErrInvalidParam      = errors.New("ErrInvalidParam")
	ErrExecNameNotAllow  = errors.New("ErrExecNameNotAllow")
	ErrSymbolNameNotAllow = errors.New("ErrSymbolNameNotAllow")
	ErrUnRegistedDriver  = errors.New("ErrUnRegistedDriver")
	ErrUnknowsType       = errors.New("ErrUnknowsType")
	ErrSign              = errors.New("ErrSign")
	ErrEmpty             = errors.New("ErrEmpty")
)
