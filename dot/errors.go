// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"errors"
)

// ErrNoKeysProvided is returned when the keystore holds no author key
var ErrNoKeysProvided = errors.New("no keys provided for collator node")
