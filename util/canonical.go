// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/nameswapd/fault"
)

// Connection - a canonical IP address and port
type Connection struct {
	ip   net.IP
	port int
}

// NewConnection - parse a host:port string
//
// examples:
//
//	IPv4:  127.0.0.1:1234
//	IPv6:  [::1]:1234
//	all:   *:1234  (IPv6 any)
func NewConnection(hostPort string) (*Connection, error) {

	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return nil, fault.InvalidIpAddress
	}

	host = strings.TrimSpace(host)
	if "*" == host {
		host = "::"
	}

	IP := net.ParseIP(host)
	if nil == IP {
		return nil, fault.InvalidIpAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err {
		return nil, fault.InvalidPortNumber
	}
	if numericPort < 1 || numericPort > 65535 {
		return nil, fault.InvalidPortNumber
	}

	c := &Connection{
		ip:   IP,
		port: numericPort,
	}
	return c, nil
}

// NewConnections - convert a list of host:port strings
func NewConnections(hostPort []string) ([]*Connection, error) {
	if 0 == len(hostPort) {
		return nil, fault.InvalidIpAddress
	}
	c := make([]*Connection, len(hostPort))
	for i, hp := range hostPort {
		connection, err := NewConnection(hp)
		if nil != err {
			return nil, err
		}
		c[i] = connection
	}
	return c, nil
}

// CanonicalIPandPort - the address with a prefix and a flag set for IPv6
func (conn *Connection) CanonicalIPandPort(prefix string) (string, bool) {
	port := strconv.Itoa(conn.port)
	if nil != conn.ip.To4() {
		return prefix + conn.ip.String() + ":" + port, false
	}
	return prefix + "[" + conn.ip.String() + "]:" + port, true
}

// String - the canonical address without prefix
func (conn *Connection) String() string {
	s, _ := conn.CanonicalIPandPort("")
	return s
}
