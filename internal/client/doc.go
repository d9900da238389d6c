// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the terminal UI to the sync controller and owns their shared
// lifecycle: the UI runs until the user quits or the process is signalled,
// after which the controller is closed and inbox polling stops.
package client
