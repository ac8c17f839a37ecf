// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the configuration
// enables no transport at all. This is a fatal misconfiguration and stops
// the process at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
