// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration enables no transport, i.e. no HTTP port is set. This is
// treated as a fatal misconfiguration and causes the application to fail at
// startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
