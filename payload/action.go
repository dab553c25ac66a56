// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payload

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/omnipack/fault"
)

// DExAction - what a distributed exchange sell record does to an offer
type DExAction uint8

// the documented actions
const (
	NoAction     = DExAction(iota)
	ActionNew    = DExAction(iota)
	ActionUpdate = DExAction(iota)
	ActionCancel = DExAction(iota)

	// this item must be last
	maximumAction = DExAction(iota)
)

// IsValid - only new, update and cancel
func (action DExAction) IsValid() bool {
	return action > NoAction && action < maximumAction
}

// String - lowercase name of the action
func (action DExAction) String() string {
	switch action {
	case ActionNew:
		return "new"
	case ActionUpdate:
		return "update"
	case ActionCancel:
		return "cancel"
	default:
		return "*unknown*"
	}
}

// GoString - enum value and name, for debugging
func (action DExAction) GoString() string {
	return fmt.Sprintf("<DExAction#%d:%q>", uint8(action), action.String())
}

// DExActionFromString - accepts the name or the wire number
func DExActionFromString(in string) (DExAction, error) {
	switch strings.ToLower(in) {
	case "new":
		return ActionNew, nil
	case "update":
		return ActionUpdate, nil
	case "cancel":
		return ActionCancel, nil
	}
	n, err := strconv.ParseUint(in, 10, 8)
	if nil != err || !DExAction(n).IsValid() {
		return NoAction, fault.ErrInvalidAction
	}
	return DExAction(n), nil
}
