// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

//go:generate mockgen -source=interfaces.go -destination=../mock/prompter_mock.go -package=mock

// Prompter asks the user for a secret value.
type Prompter interface {
	// Secret shows label and returns what the user typed.
	Secret(label string) (string, error)
}
