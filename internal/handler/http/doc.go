// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of ecostats.
//
// It exposes route wiring, controllers, and middleware. Cross-cutting
// concerns such as CORS, request tracing, access logging, panic recovery,
// authentication, role guards and request body validation are handled in
// this package before requests are delegated to the service layer. Every
// response, successful or not, is a [models.Envelope].
package http
