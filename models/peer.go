// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net"
	"strconv"
)

// PeerTarget identifies a sync counterpart reachable over the local network.
type PeerTarget struct {
	// Address is the host name or IP address of the peer.
	Address string `json:"address"`

	// Port is the TCP port the peer's HTTP endpoint listens on.
	Port int `json:"port"`
}

// Complete reports whether both the address and the port are set.
func (t PeerTarget) Complete() bool {
	return t.Address != "" && t.Port > 0
}

// HostPort renders the target as "address:port".
func (t PeerTarget) HostPort() string {
	return net.JoinHostPort(t.Address, strconv.Itoa(t.Port))
}

// BaseURL renders the target as an http URL without a trailing slash.
func (t PeerTarget) BaseURL() string {
	return "http://" + t.HostPort()
}

// String implements fmt.Stringer.
func (t PeerTarget) String() string {
	return t.HostPort()
}
