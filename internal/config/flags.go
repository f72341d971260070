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
//	-d database file path (SQLite DSN)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-version application version string
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var version string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "SQLite database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&version, "version", "", "Application version")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that mergo
// treats the field as unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost", and returns an error if the format or values are invalid.
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

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port

	return nil
}
