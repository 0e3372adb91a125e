// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltool - run a workload script against a balanced tree
//
// usage:
//
//	avltool --config-file=avltool.conf [--print] [--verbose] [command]
//
// the configuration file is Lua and must return a table with a
// "script" block and an optional "logging" block, for example:
//
//	return {
//	    data_directory = ".",
//	    script = {
//	        key_type = "int",
//	        random = { count = 1000, range = 100000, seed = 1, remove = true },
//	        operations = {
//	            { op = "insert", key = "42" },
//	            { op = "height" },
//	        },
//	    },
//	    logging = {
//	        levels = { DEFAULT = "info" },
//	    },
//	}
package main
