// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated means the configuration has no HTTP address or
	// the handlers were not built.
	errNoServersAreCreated = errors.New("no servers are created")

	// errNothingToRun is returned by run on a server without a listener.
	errNothingToRun = errors.New("no server to run")
)
