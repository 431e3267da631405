// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive application runtime.
//
// It wires the cipher service, the notification center, and the terminal
// UI into a single process lifecycle, including the mandatory platform
// capability probe at startup.
package client
