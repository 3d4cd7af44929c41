// SPDX-License-Identifier: MIT

// Package config holds the runtime settings of an lvmpi process and resolves
// them from three layers, lowest precedence first:
//
//	Default() < YAML file (--config) < command-line flags
//
// A process runs in one of two modes. With no peers it is a local group of
// Procs ranks inside one process. With peers it is one rank of a networked
// group; Rank selects its entry in Peers and len(Peers) is the group size.
//
// Example file:
//
//	rank: 1
//	peers: ["10.0.0.1:7070", "10.0.0.2:7070", "10.0.0.3:7070"]
//	log_level: debug
//	log_format: json
//	dial_timeout: 45s
package config
