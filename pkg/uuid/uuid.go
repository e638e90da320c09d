// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates document identifiers.

Identifiers are UUIDv7 strings: unique, opaque to clients, and ordered by
creation time, which keeps the PostgreSQL primary key index append-mostly.
*/
package uuid

import "github.com/google/uuid"

// New returns a fresh UUIDv7 in canonical text form.
// It panics only when the system entropy source fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuid: failed to generate identifier: " + err.Error())
	}
	return id.String()
}
