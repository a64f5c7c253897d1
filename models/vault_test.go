// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVault_AddKeepsOrderAndDuplicates(t *testing.T) {
	v := NewVault()
	v.Add(Credential{Service: "github", Username: "alice", Password: "a"})
	v.Add(Credential{Service: "mail", Username: "bob", Password: "b"})
	v.Add(Credential{Service: "github", Username: "carol", Password: "c"})

	require.Equal(t, 3, v.Len())
	assert.Equal(t, "alice", v.Entries[0].Username)
	assert.Equal(t, "bob", v.Entries[1].Username)
	assert.Equal(t, "carol", v.Entries[2].Username)
}

func TestVault_FindReturnsFirstMatch(t *testing.T) {
	v := NewVault()
	v.Add(Credential{Service: "github", Username: "alice"})
	v.Add(Credential{Service: "github", Username: "carol"})

	c, ok := v.Find("github")
	require.True(t, ok)
	assert.Equal(t, "alice", c.Username)

	_, ok = v.Find("gitlab")
	assert.False(t, ok)
}

func TestVault_RemoveAllMatches(t *testing.T) {
	v := NewVault()
	v.Add(Credential{Service: "github", Username: "alice"})
	v.Add(Credential{Service: "mail", Username: "bob"})
	v.Add(Credential{Service: "github", Username: "carol"})

	removed := v.Remove("github")
	assert.Equal(t, 2, removed)
	require.Equal(t, 1, v.Len())
	assert.Equal(t, "mail", v.Entries[0].Service)
}

func TestVault_RemoveNoMatchIsNoop(t *testing.T) {
	v := NewVault()
	v.Add(Credential{Service: "mail", Username: "bob"})

	assert.Zero(t, v.Remove("nonexistent-service"))
	assert.Equal(t, 1, v.Len())
}

func TestVault_MarshalJSON_Canonical(t *testing.T) {
	var empty Vault
	data, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"entries":[]}`, string(data))

	v := NewVault()
	v.Add(Credential{Service: "github", Username: "alice", Password: "p@ss1234"})
	data, err = json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"entries":[{"service":"github","username":"alice","password":"p@ss1234"}]}`, string(data))
}

func TestVault_UnmarshalLegacyPlaintext(t *testing.T) {
	raw := `{"entries":[{"service":"github","username":"alice","password":"p@ss1234"}]}`

	var v Vault
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	require.Equal(t, 1, v.Len())
	assert.Equal(t, Credential{Service: "github", Username: "alice", Password: "p@ss1234"}, v.Entries[0])
}
