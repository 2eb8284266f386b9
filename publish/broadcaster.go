// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/nameswapd/messagebus"
	"github.com/bitmark-inc/nameswapd/util"
	"github.com/bitmark-inc/nameswapd/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
	broadcasterQueueSize = 1000
)

type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
	queue   <-chan messagebus.Message
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string, queue *messagebus.BroadcastQueue) error {

	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	c, err := util.NewConnections(broadcast)
	if nil != err {
		log.Errorf("ip and port error: %s", err)
		return err
	}

	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, c)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	// register before the background starts so no notice is missed
	brdc.queue = queue.Chan(broadcasterQueueSize)

	return nil
}

// Run - send every queued notice to all subscribers
//
// frames: command, recipient, message
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			log.Debugf("sending: %s  data: %q", item.Command, item.Parameters)
			brdc.process(brdc.socket4, &item)
			brdc.process(brdc.socket6, &item)
		}
	}
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// send one multipart message
func (brdc *broadcaster) process(socket *zmq.Socket, item *messagebus.Message) {
	if nil == socket {
		return
	}

	if 0 == len(item.Parameters) {
		_, err := socket.Send(item.Command, zmq.DONTWAIT)
		if nil != err {
			brdc.log.Errorf("send command: %q  error: %s", item.Command, err)
		}
		return
	}

	_, err := socket.Send(item.Command, zmq.SNDMORE|zmq.DONTWAIT)
	if nil != err {
		brdc.log.Errorf("send command: %q  error: %s", item.Command, err)
		return
	}
	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		flags := zmq.SNDMORE | zmq.DONTWAIT
		if i == last {
			flags = zmq.DONTWAIT
		}
		_, err = socket.SendBytes(p, flags)
		if nil != err {
			brdc.log.Errorf("send parameter[%d] error: %s", i, err)
			return
		}
	}
}
