// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// pwdvault commands.
//
// All Msg* constants are human-readable message strings printed to the
// terminal to describe the outcome of an operation. Keeping them in one
// place ensures consistent wording throughout the CLI.
package app

const (
	// MsgServiceAdded is printed after a credential was stored.
	MsgServiceAdded = "Service added successfully!"

	// MsgServiceDeleted is printed after delete, including when nothing
	// matched.
	MsgServiceDeleted = "Service deleted successfully!"

	// MsgNothingDeleted is appended when delete matched no entry.
	MsgNothingDeleted = "no entries matched"

	// MsgCopiedToClipboard is printed after --copy succeeded.
	MsgCopiedToClipboard = "Copied to clipboard."

	// MsgClipboardUnavailable is printed when --copy was requested but no
	// clipboard is reachable.
	MsgClipboardUnavailable = "clipboard is unavailable"
)
