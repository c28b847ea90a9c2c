// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless client runtime.
//
// It wires the remote adapter, local storage and sync services into a
// single process lifecycle and reports sync status to the log.
package client
