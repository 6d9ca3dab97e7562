// Package driven defines the outbound ports: interfaces the core services
// depend on, implemented by adapters (token stores, Drive and Sheets
// clients, config, filing history).
package driven
