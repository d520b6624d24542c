// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"fmt"
	"strings"
)

// A Validator accepts or rejects a raw payload. Validators run in merge
// order after the ResponseReceived plugins; the first error ends the
// dispatch and is returned to the caller unchanged.
type Validator interface {
	Validate(payload interface{}) error
}

// The ValidatorFunc type is an adapter to allow the use of ordinary
// functions as validators.
type ValidatorFunc func(payload interface{}) error

// Validate calls f(payload).
func (f ValidatorFunc) Validate(payload interface{}) error {
	return f(payload)
}

// RequireKeys returns a Validator which rejects any payload that is not
// a JSON object containing every one of keys. The error is a
// *MissingKeyError.
func RequireKeys(keys ...string) Validator {
	keys = append([]string(nil), keys...)
	return ValidatorFunc(func(payload interface{}) error {
		obj, _ := payload.(map[string]interface{})
		var missing []string
		for _, k := range keys {
			if _, ok := obj[k]; !ok {
				missing = append(missing, k)
			}
		}
		if len(missing) > 0 {
			return &MissingKeyError{Keys: missing}
		}
		return nil
	})
}

// A MissingKeyError is returned by the RequireKeys validator.
type MissingKeyError struct {
	// Keys lists the required keys which were absent, in the order they
	// were required.
	Keys []string
}

func (e *MissingKeyError) Error() string {
	quoted := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return "dispatch: payload missing key(s) " + strings.Join(quoted, ", ")
}

func validate(chain []Validator, payload interface{}) error {
	for _, v := range chain {
		if err := v.Validate(payload); err != nil {
			return err
		}
	}
	return nil
}
