// Package inventory provides the types and operations to manage a small
// product stock and invoice its sales. It is designed to be local-first: the
// whole state lives in a key-value store chosen by the user (a folder of JSON
// files, a SQLite file or a SQL server).
//
// The core functionalities include:
//   - Inventory Store: loading and saving the complete product list, and
//     broadcasting a change notification after every write.
//   - Inventory Mutators: adding (or merging by name), editing and deleting
//     products with user confirmation, never leaving a partial write behind.
//   - Identifiers: sequential PROD-NNN product identifiers that are never reused.
//   - Stock Classification: the critical flag and the two status tables used by
//     the inventory, stock and report views.
//   - Invoicing: a cart filled by sales that decrement the stock, finalized
//     into numbered invoices.
//   - Reporting: the stock report with its summary statistics.
//
// This package serves as the foundational logic for the `inv` command-line
// tool.
package inventory
