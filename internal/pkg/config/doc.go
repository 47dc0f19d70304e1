// Package config holds the validated settings structs for the service
// (logging, database, key vault, REST server) and the viper-based loader
// that populates them from yaml files and environment variables.
package config
