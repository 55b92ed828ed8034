// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It restores the saved login session and hands control to the terminal UI
// until the user quits.
package client
