// Package server holds the Montar server instance.
//
// The instance is built from an already loaded configuration and an
// installed logger. Starting it currently only announces the bind address;
// no listener is opened yet.
package server
