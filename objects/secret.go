// Copyright 2022-2025 The Lightspark SDK Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package objects

import "github.com/mb-custody/lightspark"

// SecretFragment selects every Secret field.
const SecretFragment = "\nfragment SecretFragment on Secret {" + secretSelection + "}\n"

// A Secret is an encrypted value and the cipher needed to decrypt it.
type Secret struct {
	EncryptedValue string
	Cipher         string
}

// SecretFromJSON decodes a Secret.
func SecretFromJSON(requester lightspark.Requester, obj map[string]any) (Secret, error) {
	r := newReader(requester, obj, "secret")
	secret := Secret{
		EncryptedValue: r.String("encrypted_value"),
		Cipher:         r.String("cipher"),
	}
	if err := r.Err(); err != nil {
		return Secret{}, err
	}
	return secret, nil
}

func (Secret) Typename() string { return "Secret" }

func (s Secret) ToJSON() map[string]any {
	return map[string]any{
		typenameKey:              s.Typename(),
		"secret_encrypted_value": s.EncryptedValue,
		"secret_cipher":          s.Cipher,
	}
}
