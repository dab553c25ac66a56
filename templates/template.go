// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package templates - text of generated files
package templates

const (
	/**** Configuration template ****/
	ConfigurationTemplate = `-- omnipack-cli.conf  -*- mode: lua -*-

local M = {}

-- directory for logs, "." is the directory containing this file
M.data_directory = "."

-- bitcoin, testing or local
M.chain = {{printf "%q" .Chain}}

-- Omni Core JSON-RPC server
M.connection = {
    host = {{printf "%q" .Host}},
    username = {{printf "%q" .Username}},
    -- the password is read from the environment
    password = os.getenv("{{.PasswordVariable}}") or "",
    use_tls = {{.UseTLS}},
    requests_per_second = {{.RequestsPerSecond}},
    burst = {{.Burst}},
}

M.logging = {
    directory = "log",
    file = "omnipack-cli.log",
    size = 1048576,
    count = 10,
    console = false,
    levels = {
        DEFAULT = "info",
    },
}

return M
`
)
