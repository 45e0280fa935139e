/*
Package config loads command configuration with viper, layering a configuration file, the
environment and command-line flags.
*/
package config
