// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"crypto/rand"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/nameswapd/fault"
)

const identifierSize = 32

// Subscriber - a CURVE client receiving broadcast frames
type Subscriber struct {
	socket *zmq.Socket
}

// NewSubscriber - connect a SUB socket to a broadcaster
//
// topic filters on the first frame, empty receives everything
func NewSubscriber(privateKey []byte, publicKey []byte, serverPublicKey []byte, address string, topic string, timeout time.Duration) (*Subscriber, error) {

	if publicLength != len(publicKey) || publicLength != len(serverPublicKey) {
		return nil, fault.InvalidPublicKeyFile
	}
	if privateLength != len(privateKey) {
		return nil, fault.InvalidPrivateKeyFile
	}

	socket, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		return nil, err
	}

	identifier := make([]byte, identifierSize)
	_, err = rand.Read(identifier)
	if nil != err {
		goto failure
	}

	err = socket.SetCurveServer(0)
	if nil != err {
		goto failure
	}
	err = socket.SetCurvePublickey(string(publicKey))
	if nil != err {
		goto failure
	}
	err = socket.SetCurveSecretkey(string(privateKey))
	if nil != err {
		goto failure
	}
	err = socket.SetCurveServerkey(string(serverPublicKey))
	if nil != err {
		goto failure
	}
	err = socket.SetIdentity(string(identifier))
	if nil != err {
		goto failure
	}
	if 0 != timeout {
		err = socket.SetRcvtimeo(timeout)
		if nil != err {
			goto failure
		}
	}
	err = socket.SetLinger(0)
	if nil != err {
		goto failure
	}
	err = socket.SetSubscribe(topic)
	if nil != err {
		goto failure
	}
	err = socket.Connect(address)
	if nil != err {
		goto failure
	}

	return &Subscriber{socket: socket}, nil

failure:
	socket.Close()
	return nil, err
}

// Receive - wait for the next multipart message
func (s *Subscriber) Receive() ([][]byte, error) {
	return s.socket.RecvMessageBytes(0)
}

// Close - release the socket
func (s *Subscriber) Close() error {
	return s.socket.Close()
}
