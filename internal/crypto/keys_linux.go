// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "golang.org/x/sys/unix"

func excludeFromCoreDump(b []byte) {
	_ = unix.Madvise(b, unix.MADV_DONTDUMP)
}
