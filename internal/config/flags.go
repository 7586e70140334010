// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses server configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-m MongoDB connection URI
//	-db MongoDB database name
//	-c/-config json file path with configs
//	-token-secret token signing secret
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-remember-me-duration token duration for rememberMe logins
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-frontend-url origin allowed by CORS
//	-log-level minimum log level
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var mongoURI, mongoDB string
	var jsonConfigPath string
	var tokenSecret, tokenIssuer string
	var tokenDuration, rememberMeDuration time.Duration
	var requestTimeout time.Duration
	var frontendURL string
	var logLevel string

	fs := flag.NewFlagSet("ecostats", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&mongoURI, "m", "", "MongoDB URI")
	fs.StringVar(&mongoDB, "db", "", "MongoDB database name")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSecret, "token-secret", "", "Token signing secret")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&rememberMeDuration, "remember-me-duration", 0, "Token duration for rememberMe logins")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&frontendURL, "frontend-url", "", "Origin allowed by CORS")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Auth: Auth{
			TokenSecret:             tokenSecret,
			TokenIssuer:             tokenIssuer,
			TokenDuration:           tokenDuration,
			RememberMeTokenDuration: rememberMeDuration,
		},
		Storage: Storage{
			MongoURI: mongoURI,
			Database: mongoDB,
		},
		Server: Server{
			Host:           serverAddress.Host,
			Port:           serverAddress.Port,
			RequestTimeout: requestTimeout,
			FrontendURL:    frontendURL,
		},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host binds all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
