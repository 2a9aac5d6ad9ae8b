// Package config handles configuration for the client component:
// defaults, JSON overlay, environment overlay, and command-line flags,
// with later sources taking precedence.
//
// The three candidate endpoint URLs cover the runtime environments the
// client may find itself in: next to an Android emulator (whose host
// loopback is 10.0.2.2), on the developer's machine, or on a physical
// device reaching the development host over the LAN.
package config
