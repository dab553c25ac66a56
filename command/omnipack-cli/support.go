// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/omnipack/amount"
	"github.com/bitmark-inc/omnipack/omnirpc"
	"github.com/bitmark-inc/omnipack/property"
	"github.com/bitmark-inc/omnipack/sender"
)

// flags shared between commands

func propertyFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "property, p",
		Value: "",
		Usage: "*property `ID`",
	}
}

func ecosystemFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "ecosystem, e",
		Value: "main",
		Usage: " `ECOSYSTEM` [main|test]",
	}
}

func typeFlag(name string) cli.Flag {
	return cli.StringFlag{
		Name:  name,
		Value: "divisible",
		Usage: " property `TYPE` [divisible|indivisible]",
	}
}

func toFlag(required bool) cli.Flag {
	mark := " "
	if required {
		mark = "*"
	}
	return cli.StringFlag{
		Name:  "to, r",
		Value: "",
		Usage: mark + "reference `ADDRESS`",
	}
}

func memoFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "memo, m",
		Value: "",
		Usage: " `TEXT` stored with the record",
	}
}

func sendFlags() []cli.Flag {
	return []cli.Flag{
		propertyFlag(),
		cli.StringFlag{
			Name:  "amount, a",
			Value: "",
			Usage: "*token `AMOUNT`",
		},
		typeFlag("type, t"),
	}
}

func orderFlags(amounts bool) []cli.Flag {
	flags := []cli.Flag{
		propertyFlag(),
		cli.StringFlag{
			Name:  "desired-property, P",
			Value: "",
			Usage: "*desired property `ID`",
		},
	}
	if amounts {
		flags = append(flags,
			cli.StringFlag{
				Name:  "amount, a",
				Value: "",
				Usage: "*amount for sale `AMOUNT`",
			},
			typeFlag("type, t"),
			cli.StringFlag{
				Name:  "desired-amount, A",
				Value: "",
				Usage: "*amount desired `AMOUNT`",
			},
			typeFlag("desired-type, T"),
		)
	}
	return flags
}

func issuanceFlags() []cli.Flag {
	flags := []cli.Flag{
		ecosystemFlag(),
		typeFlag("type, t"),
	}
	for _, name := range []string{"category", "subcategory", "name, n", "url", "data"} {
		flags = append(flags, cli.StringFlag{
			Name:  name,
			Value: "",
			Usage: " property `TEXT`",
		})
	}
	return flags
}

// argument parsing

func checkProperty(s string) (property.Identifier, error) {
	id, err := property.IdentifierFromString(s)
	if nil != err {
		return property.New, fmt.Errorf("property: %q error: %s", s, err)
	}
	return id, nil
}

func checkAmount(s string) (decimal.Decimal, error) {
	d, err := amount.Parse(s)
	if nil != err {
		return decimal.Decimal{}, fmt.Errorf("amount: %q error: %s", s, err)
	}
	return d, nil
}

func checkType(s string) (property.Type, error) {
	t, err := property.TypeFromString(s)
	if nil != err {
		return property.NoType, fmt.Errorf("type: %q error: %s", s, err)
	}
	return t, nil
}

func checkEcosystem(s string) (property.Ecosystem, error) {
	e, err := property.EcosystemFromString(s)
	if nil != err {
		return property.NoEcosystem, fmt.Errorf("ecosystem: %q error: %s", s, err)
	}
	return e, nil
}

func checkReference(s string) (string, error) {
	if "" == s {
		return "", fmt.Errorf("reference address is required")
	}
	return s, nil
}

// percentages and windows must fit their wire sizes
func checkByte(name string, n int, minimum int, maximum int) error {
	if n < minimum || n > maximum {
		return fmt.Errorf("%s: %d is outside %d..%d", name, n, minimum, maximum)
	}
	return nil
}

// capture the payload instead of sending it
type recorder struct {
	payload   string
	reference string
}

func (r *recorder) Broadcast(from string, payloadHex string, reference string) (string, error) {
	r.payload = payloadHex
	r.reference = reference
	return "", nil
}

type result struct {
	Payload   string `json:"payload,omitempty"`
	Reference string `json:"reference,omitempty"`
	TxId      string `json:"txId,omitempty"`
}

type operation func(s *sender.Sender, from string) (string, error)

// run an operation against a recorder or the configured node
func perform(m *metadata, op operation) error {

	if "" == m.from {
		r := &recorder{}
		if _, err := op(sender.New(r), ""); nil != err {
			return err
		}
		return printJson(m.w, result{
			Payload:   r.payload,
			Reference: r.reference,
		})
	}

	if err := fillPassword(m.e, &m.config.Connection); nil != err {
		return err
	}

	client, err := omnirpc.New(m.config.Chain, m.config.Connection)
	if nil != err {
		return err
	}
	defer client.Shutdown()

	if m.verbose {
		fmt.Fprintf(m.e, "chain: %s\n", m.config.Chain)
		fmt.Fprintf(m.e, "node: %s\n", m.config.Connection.Host)
		fmt.Fprintf(m.e, "from: %s\n", m.from)
	}

	txId, err := op(sender.New(client), m.from)
	if nil != err {
		return err
	}
	return printJson(m.w, result{
		TxId: txId,
	})
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
