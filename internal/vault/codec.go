// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/models"
)

// recordSetDoc mirrors models.Vault with pointers so absent keys and nulls
// can be told apart from empty strings.
type recordSetDoc struct {
	Entries *[]*credentialDoc `json:"entries"`
}

type credentialDoc struct {
	Service  *string `json:"service"`
	Username *string `json:"username"`
	Password *string `json:"password"`
}

var (
	errMissingEntries = errors.New(`missing "entries"`)
	errNullRecordSet  = errors.New("record set is null")
)

// decodeRecordSet parses decrypted plaintext. The "entries" key and all
// three fields of every entry are required; unknown keys are ignored.
func decodeRecordSet(text []byte) (models.Vault, error) {
	var doc *recordSetDoc
	if err := json.Unmarshal(text, &doc); err != nil {
		return models.Vault{}, err
	}
	if doc == nil {
		return models.Vault{}, errNullRecordSet
	}
	if doc.Entries == nil {
		return models.Vault{}, errMissingEntries
	}

	v := models.Vault{Entries: make([]models.Credential, 0, len(*doc.Entries))}
	for i, e := range *doc.Entries {
		if e == nil {
			return models.Vault{}, fmt.Errorf("entry %d is null", i)
		}
		switch {
		case e.Service == nil:
			return models.Vault{}, fmt.Errorf(`entry %d: missing "service"`, i)
		case e.Username == nil:
			return models.Vault{}, fmt.Errorf(`entry %d: missing "username"`, i)
		case e.Password == nil:
			return models.Vault{}, fmt.Errorf(`entry %d: missing "password"`, i)
		}
		v.Entries = append(v.Entries, models.Credential{
			Service:  *e.Service,
			Username: *e.Username,
			Password: *e.Password,
		})
	}
	return v, nil
}
