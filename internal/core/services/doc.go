// Package services contains the application services that orchestrate the
// driven ports: credential acquisition, folder-path resolution, document
// lookup, uploads, grouped-row appends, and the end-to-end filing flow.
package services
