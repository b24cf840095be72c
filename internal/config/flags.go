// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// peerList collects repeated or comma separated -peer flags.
type peerList []string

func (p *peerList) String() string {
	return strings.Join(*p, ",")
}

func (p *peerList) Set(s string) error {
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if _, err := ParsePeerAddress(entry); err != nil {
			return err
		}
		*p = append(*p, entry)
	}
	return nil
}

// parseFlags parses configuration flags from args and returns the parsed
// config together with the remaining positional arguments.
//
// Flags:
//
//	-a            peer server listen address in format [host]:[port]
//	-d            database DSN or SQLite file path
//	-c/-config    json file path with configs
//	-peer         known peer host:port (repeatable, comma separated)
//	-fallback-address / -fallback-port   target used when no peer is found
//	-request-timeout   timeout of meta, survey list and bundle requests
//	-server-timeout    peer server request timeout
//	-page-size    replication page size
//	-zoom         tile zoom level for viewport passes
//	-max-tiles    maximum tiles per viewport pass
//	-log-file     client log file
//	-version      application version string
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("field-sync", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath, fallbackAddress, logFile, version string
	var fallbackPort, pageSize, zoom, maxTiles int
	var requestTimeout, serverTimeout time.Duration
	var peers peerList

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN or SQLite file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.Var(&peers, "peer", "Known peer host:port (repeatable)")
	fs.StringVar(&fallbackAddress, "fallback-address", "", "Peer address used when discovery finds nothing")
	fs.IntVar(&fallbackPort, "fallback-port", 0, "Peer port used when discovery finds nothing")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Peer request timeout (e.g., 1s)")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Server request timeout (e.g., 30s)")
	fs.IntVar(&pageSize, "page-size", 0, "Replication page size")
	fs.IntVar(&zoom, "zoom", 0, "Tile zoom level")
	fs.IntVar(&maxTiles, "max-tiles", 0, "Maximum tiles per viewport pass")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&version, "version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: version,
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
			PageSize:       pageSize,
		},
		Discovery: Discovery{
			Peers:           peers,
			FallbackAddress: fallbackAddress,
			FallbackPort:    fallbackPort,
		},
		Map: Map{
			TileZoom:        zoom,
			MaxTilesPerPass: maxTiles,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces; any other host must be "localhost" or
// a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// ParsePeerAddress validates a "host:port" peer entry. Unlike [NetAddress],
// host names are accepted since peers may be announced by name.
func ParsePeerAddress(s string) (NetAddress, error) {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil || host == "" {
		return NetAddress{}, fmt.Errorf("%w: %q", ErrInvalidPeerAddress, s)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return NetAddress{}, fmt.Errorf("%w: %q", ErrInvalidPeerAddress, s)
	}

	return NetAddress{Host: host, Port: port}, nil
}
