// Package config loads plantgraph's runtime configuration: worker count,
// APSP density threshold, and output directory, via a viper.Viper with
// defaults set up-front, an optional config file layered on top, and
// environment variables overriding both. Scenario selection (which node
// or areas to perturb) stays on the cobra command line: this package
// never decides *what* to simulate, only how the simulation runs.
package config
