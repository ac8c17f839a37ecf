// Package config provides configuration loading, merging, and validation
// facilities for the service.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables (a .env file in the working directory is loaded
//     into the environment first, without overriding variables already set)
//  2. JSON config file named by the CONFIG variable
//  3. Built-in defaults
//
// The main entry point is [GetStructuredConfig]. The returned
// [StructuredConfig] is treated as immutable after startup.
package config
