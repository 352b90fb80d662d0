// Package cli provides command-line interface setup and configuration
// for the totaltranslate application. It handles flag parsing, command
// creation, configuration management using cobra and viper, and the
// logger setup.
package cli
