// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Vault is the ordered record set persisted as one encrypted blob.
// It is always saved and loaded as a whole.
type Vault struct {
	// Entries holds credentials in insertion order.
	Entries []Credential `json:"entries"`
}

// NewVault returns an empty record set whose Entries serializes as [] rather
// than null.
func NewVault() Vault {
	return Vault{Entries: make([]Credential, 0)}
}

// Add appends c to the end of the record set. Duplicate services are kept.
func (v *Vault) Add(c Credential) {
	v.Entries = append(v.Entries, c)
}

// Find returns the first credential whose Service equals service.
func (v Vault) Find(service string) (Credential, bool) {
	for _, c := range v.Entries {
		if c.Service == service {
			return c, true
		}
	}
	return Credential{}, false
}

// Remove deletes every credential whose Service equals service, preserving
// the order of the rest, and reports how many were removed.
func (v *Vault) Remove(service string) int {
	kept := v.Entries[:0]
	removed := 0
	for _, c := range v.Entries {
		if c.Service == service {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	// clear the tail so removed secrets do not linger in the backing array
	for i := len(kept); i < len(v.Entries); i++ {
		v.Entries[i] = Credential{}
	}
	v.Entries = kept
	return removed
}

// Len returns the number of stored credentials.
func (v Vault) Len() int {
	return len(v.Entries)
}

// MarshalJSON keeps the encoding canonical: a nil slice is written as an
// empty list so the same logical vault always produces the same plaintext.
func (v Vault) MarshalJSON() ([]byte, error) {
	type plain Vault
	if v.Entries == nil {
		v.Entries = make([]Credential, 0)
	}
	return json.Marshal(plain(v))
}
