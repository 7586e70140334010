// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It parses subcommands, calls the API through an [adapter.APIAdapter] and
// renders the results for a terminal.
package client
