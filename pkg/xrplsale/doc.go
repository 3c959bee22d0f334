// Package xrplsale provides types, interfaces, and helpers for working with
// the XRPL.Sale platform API.
//
// # Overview
//
// The xrplsale package defines the domain types (e.g., Project, Investment,
// Webhook) and the interfaces for resource-oriented clients (e.g.,
// ProjectsClient, InvestmentsClient). A concrete implementation of these
// clients is provided by the saleclient package, which wires configuration,
// transport, authentication, and retry behavior. Most consumers should import
// saleclient to construct a client and then interact with the resource client
// interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/xrplsale/xrplsale-go/pkg/saleclient"
//	  "github.com/xrplsale/xrplsale-go/pkg/xrplsale"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := saleclient.New(&xrplsale.Config{APIKey: "your-api-key"})
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of active projects
//	  projects, err := cli.Projects().Active(ctx, 1, 25)
//	  if err != nil { log.Fatal(err) }
//	  _ = projects
//	}
//
// # Queries and pagination
//
// Use ListOptions (and its per-resource variants) to express common list
// options (page, limit, sorting, filters). List endpoints return a
// ListResponse whose pagination envelope drives the auto-pagination helpers:
//
//	it := cli.Projects().All(ctx, xrplsale.ProjectStatusActive)
//	for it.HasNext() {
//	  project, err := it.Next()
//	  if err != nil { break }
//	  _ = project
//	}
//
// An iterator is forward-only and single-use: once exhausted or errored it
// cannot be restarted; construct a new one instead.
//
// # Errors
//
// API errors are represented by APIError, TransportError, and ParseError.
// Helpers such as IsNotFound, IsUnauthorized, and IsRateLimited make it easy
// to branch on common failure cases, and RetryAfterHint exposes the server's
// Retry-After header on rate-limited calls.
//
// # Webhooks
//
// WebhookSignatureValidator verifies HMAC-SHA256 signatures on inbound
// webhook payloads using the webhook secret from the client configuration.
package xrplsale
