// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the lifecycle of one run: build the tree
// from a layout description, print it, and optionally keep it alive behind
// an inspection server and a remote event relay. It is decoupled from any
// specific entrypoint like a CLI.
package app
