// Package config provides configuration loading, merging, and validation
// facilities for the chat client and the demo agent.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. A dotenv file (loaded into the process environment)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON config file
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetServerConfig] for the demo agent server.
package config
