// Package ports declares the seams of the board. Inbound adapters (HTTP
// handlers, web components) depend on BoardService; projectctl depends on
// BoardClient; the readiness probe depends on HealthRegistry. Mocks for
// every interface are generated into /mocks by mockery.
package ports
