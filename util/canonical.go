// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/omnipack/fault"
)

// CanonicalHostPort - make the Host:Port canonical
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
//   name:  localhost:8332
func CanonicalHostPort(hostPort string) (string, error) {

	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return "", fault.ErrInvalidHost
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err || numericPort < 1 || numericPort > 65535 {
		return "", fault.ErrInvalidPortNumber
	}
	p := strconv.Itoa(numericPort)

	host = strings.TrimSpace(host)
	if IP := net.ParseIP(host); nil != IP {
		if nil != IP.To4() {
			return IP.String() + ":" + p, nil
		}
		return "[" + IP.String() + "]:" + p, nil
	}

	if !validHostName(host) {
		return "", fault.ErrInvalidHost
	}
	return strings.ToLower(host) + ":" + p, nil
}

// letters, digits, '-' and '.' with no empty labels
func validHostName(host string) bool {
	if "" == host || len(host) > 253 {
		return false
	}
	for _, label := range strings.Split(host, ".") {
		if "" == label || len(label) > 63 {
			return false
		}
		if '-' == label[0] || '-' == label[len(label)-1] {
			return false
		}
		for _, c := range label {
			switch {
			case c >= 'a' && c <= 'z':
			case c >= 'A' && c <= 'Z':
			case c >= '0' && c <= '9':
			case '-' == c:
			default:
				return false
			}
		}
	}
	return true
}
