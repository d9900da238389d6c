// Package config provides configuration loading, merging, and validation
// for the messenger client and the Message Store server.
//
// Configuration is assembled from several sources. Earlier sources win for
// every field they set; later sources only fill fields that are still zero:
//  1. Environment variables (a .env file in the working directory is loaded
//     first and never overrides variables already set in the process)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetClientConfig] and [GetServerConfig], which project
// the merged [StructuredConfig] onto the settings each binary needs.
package config
