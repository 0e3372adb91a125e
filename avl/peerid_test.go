// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"testing"

	p2pPeer "github.com/libp2p/go-libp2p-core/peer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
)

type peerIDkey p2pPeer.ID

// Compare - public key comparison for AVL interface
func (p peerIDkey) Compare(q peerIDkey) int {
	return bytes.Compare([]byte(p), []byte(q))
}

// peerIDKey to String
func (p peerIDkey) String() string {
	return p2pPeer.ID(p).String()
}

func TestCompare(t *testing.T) {
	IDKeys := []peerIDkey{
		peerIDkey(p2pPeer.ID("1000")),
		peerIDkey(p2pPeer.ID("8133")),
		peerIDkey(p2pPeer.ID("999")),
	}
	lowKey := peerIDkey(p2pPeer.ID("1000"))
	res := lowKey.Compare(IDKeys[0])
	assert.Equal(t, res, 0, "Not Equal")
	res = lowKey.Compare(IDKeys[1])
	assert.Greater(t, 0, res, "Input is not greater")
	res = lowKey.Compare(IDKeys[2])
	assert.Greater(t, 0, res, "Input is not lesser")
}

func TestPeerKeys(t *testing.T) {
	IDKeys := []peerIDkey{
		peerIDkey(p2pPeer.ID("8133")),
		peerIDkey(p2pPeer.ID("1000")),
		peerIDkey(p2pPeer.ID("999")),
		peerIDkey(p2pPeer.ID("1000")),
	}
	tree, err := avl.NewWithComparator[peerIDkey](nil)
	require.NoError(t, err)
	for _, key := range IDKeys {
		_, err := tree.Insert(key)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, tree.Count())

	expected := []peerIDkey{"1000", "8133", "999"}
	assert.Equal(t, expected, tree.Keys())

	// peer.ID is a string type so also has a natural ordering
	ids := avl.New[p2pPeer.ID]()
	for _, key := range IDKeys {
		_, _ = ids.Insert(p2pPeer.ID(key))
	}
	first, ok := ids.Min()
	assert.True(t, ok)
	assert.Equal(t, p2pPeer.ID("1000"), first)
}
