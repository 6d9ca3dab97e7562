// Package domain contains the core business entities for shoebox:
// OAuth credentials, Drive nodes, folder paths, and ledger rows.
// It has no dependencies on adapters or external APIs.
package domain
