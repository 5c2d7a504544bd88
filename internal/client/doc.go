// Package client implements the interactive application runtime.
//
// It wires the terminal UI flows, the business-logic services, and the
// background deck refresh into a single process lifecycle.
package client
