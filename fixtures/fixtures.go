// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// public keys in ledger text form
const (
	AliceOwnerKey  = "EOS6gLR2PfBzQmmNfRqNfd4ow6iPBr3QTzvZ5UyA1yj3t8LwK1GJT"
	AliceActiveKey = "EOS5hnrdMNE2jc1fb6R8duqMujB6KWmjVpzzUxnxgjSwR7QVs6kTj"
	BobOwnerKey    = "EOS6VRW4qnwswoMapdvFfL4jdyyLMeWYu42iJ4mWtHZXJNzmr19CX"
	BobActiveKey   = "EOS6TFS1imqZhzEev6DQuMXrrP5LRZHJ9ZLtcAKrVJtp85HBnNbS3"
	CarlOwnerKey   = "EOS6EMP89rTiU17jNmesYWzB8tgXScNBVZb4qJBQ41Cyuix8Ae28W"
	CarlActiveKey  = "EOS5mG6b8JvijXPZAGjLGsfwisCp42Go8TzNssBAU1zT2J73WQrYz"
)

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
