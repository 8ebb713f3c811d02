// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runwatch command line application.
//
// It wires configuration, the local credential store, the backend transports
// and the client services into a cobra command tree: watch, show, runs,
// token and version.
package client
