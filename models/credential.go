// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credential is a single vault record: the service it belongs to, the login
// used there, and the secret itself.
//
// Service is not unique. Several credentials may share the same service name;
// lookups return the first one in insertion order.
type Credential struct {
	// Service is the human-readable name of the site or application.
	Service string `json:"service"`

	// Username is the login used for Service.
	Username string `json:"username"`

	// Password is the stored secret. Kept under the "password" JSON key so
	// vault files written by earlier releases decode unchanged.
	Password string `json:"password"`
}
