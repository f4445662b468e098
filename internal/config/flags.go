// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d server database DSN
//	-local-db client SQLite path
//	-c/-config json file path with configs
//	-adapter-address server base URL used by the client
//	-adapter-grpc-address server grpc address used by the client
//	-codec wire codec (json, binary)
//	-transport exchange transport (http, grpc)
//	-device-id device identifier
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval sync job period (e.g., "5m")
//	-log-path client log file
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, localDSN string
	var jsonConfigPath string
	var adapterAddress, adapterGRPCAddress string
	var codecName, transport string
	var deviceID string
	var requestTimeout, syncInterval time.Duration
	var logPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Server database DSN")
	flag.StringVar(&localDSN, "local-db", "", "Client SQLite database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&adapterAddress, "adapter-address", "", "Server base URL used by the client")
	flag.StringVar(&adapterGRPCAddress, "adapter-grpc-address", "", "Server gRPC address used by the client")
	flag.StringVar(&codecName, "codec", "", "Wire codec: json or binary")
	flag.StringVar(&transport, "transport", "", "Exchange transport: http or grpc")
	flag.StringVar(&deviceID, "device-id", "", "Device identifier")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Sync job period (e.g., 5m)")
	flag.StringVar(&logPath, "log-path", "", "Client log file")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DeviceID: deviceID,
			LogPath:  logPath,
		},
		Sync: Sync{
			Codec:     codecName,
			Transport: transport,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Local: Local{DSN: localDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			GRPCAddress:    adapterGRPCAddress,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
