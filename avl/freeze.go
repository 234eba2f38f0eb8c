// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Freeze - make a node and all of its descendants immutable
//
// children are frozen before the parent so a frozen node can never
// reach an unfrozen one; idempotent, an already frozen sub-tree is
// not visited again which bounds the cost of refreezing a tree that
// shares a frozen base
func (p *Node) Freeze() {
	if p.frozen {
		return
	}
	p.left.Freeze()
	p.right.Freeze()
	p.frozen = true
}
