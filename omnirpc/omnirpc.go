// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package omnirpc - broadcast payloads through an Omni Core node
package omnirpc

import (
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/omnipack/chain"
	"github.com/bitmark-inc/omnipack/fault"
	"github.com/bitmark-inc/omnipack/ratelimit"
	"github.com/bitmark-inc/omnipack/util"
)

// defaults for an unset rate limit
const (
	defaultRequestsPerSecond = 5
	defaultBurst             = 10
)

const sendRawMethod = "omni_sendrawtx"

// Connection - how to reach the node
type Connection struct {
	Host              string  `gluamapper:"host" json:"host"`
	Username          string  `gluamapper:"username" json:"username"`
	Password          string  `gluamapper:"password" json:"-"`
	UseTLS            bool    `gluamapper:"use_tls" json:"use_tls"`
	RequestsPerSecond float64 `gluamapper:"requests_per_second" json:"requests_per_second"`
	Burst             int     `gluamapper:"burst" json:"burst"`
}

// Client - a JSON-RPC client for one node
//
// safe for concurrent use
type Client struct {
	sync.Mutex

	log     *logger.L
	chain   string
	client  *rpcclient.Client
	limiter *rate.Limiter
}

// New - create a client
//
// HTTP POST mode is used so nothing is sent until the first request
func New(chainName string, connection Connection) (*Client, error) {
	if !chain.Valid(chainName) {
		return nil, fault.ErrInvalidChain
	}
	if "" == connection.Host {
		return nil, fault.ErrMissingConnection
	}
	host, err := util.CanonicalHostPort(connection.Host)
	if nil != err {
		return nil, err
	}

	perSecond := connection.RequestsPerSecond
	burst := connection.Burst
	if 0 == perSecond {
		perSecond = defaultRequestsPerSecond
	}
	if 0 == burst {
		burst = defaultBurst
	}
	limiter, err := ratelimit.New(perSecond, burst)
	if nil != err {
		return nil, err
	}

	config := &rpcclient.ConnConfig{
		Host:         host,
		User:         connection.Username,
		Pass:         connection.Password,
		HTTPPostMode: true,
		DisableTLS:   !connection.UseTLS,
	}
	client, err := rpcclient.New(config, nil)
	if nil != err {
		return nil, err
	}

	log := logger.New("omnirpc")
	log.Infof("node: %s  chain: %s  tls: %t", host, chainName, connection.UseTLS)

	return &Client{
		log:     log,
		chain:   chainName,
		client:  client,
		limiter: limiter,
	}, nil
}

// Broadcast - send a payload with omni_sendrawtx
//
// reference is omitted from the request when empty
func (c *Client) Broadcast(from string, payloadHex string, reference string) (string, error) {
	if err := chain.ValidateAddress(c.chain, from); nil != err {
		return "", err
	}
	arguments := []interface{}{from, payloadHex}
	if "" != reference {
		if err := chain.ValidateAddress(c.chain, reference); nil != err {
			return "", err
		}
		arguments = append(arguments, reference)
	}

	params := make([]json.RawMessage, len(arguments))
	for i, a := range arguments {
		b, err := json.Marshal(a)
		if nil != err {
			return "", err
		}
		params[i] = b
	}

	c.Lock()
	client := c.client
	c.Unlock()
	if nil == client {
		return "", fault.ErrMissingConnection
	}

	if err := ratelimit.Limit(c.limiter); nil != err {
		return "", err
	}

	c.log.Debugf("%s: from: %s  payload: %s  reference: %q", sendRawMethod, from, payloadHex, reference)

	result, err := client.RawRequest(sendRawMethod, params)
	if nil != err {
		c.log.Errorf("%s: error: %s", sendRawMethod, err)
		return "", fault.ErrBroadcastFailed
	}

	var txId string
	if err := json.Unmarshal(result, &txId); nil != err {
		c.log.Errorf("%s: result: %s  error: %s", sendRawMethod, result, err)
		return "", fault.ErrInvalidTransactionId
	}
	hash, err := chainhash.NewHashFromStr(txId)
	if nil != err || chainhash.MaxHashStringSize != len(txId) {
		c.log.Errorf("%s: invalid txid: %q", sendRawMethod, txId)
		return "", fault.ErrInvalidTransactionId
	}

	c.log.Infof("%s: txid: %s", sendRawMethod, hash)
	return hash.String(), nil
}

// Shutdown - stop the client, later broadcasts fail
func (c *Client) Shutdown() {
	c.Lock()
	defer c.Unlock()

	if nil == c.client {
		return
	}
	c.client.Shutdown()
	c.client = nil
	c.log.Info("shutdown")
	c.log.Flush()
}
