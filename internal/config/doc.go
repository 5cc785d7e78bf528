// Package config loads and merges brokerctl configuration.
//
// Configuration is layered, later layers overriding earlier ones:
//
//  1. Built-in defaults (GetDefaultConfig)
//  2. User config: ~/.config/brokerctl/config.yaml
//  3. Project config: ./.brokerctl/config.yaml
//  4. Environment: BROKERCTL_DATA, BROKERCTL_COLOR_MODE, BROKERCTL_PRESET
//     (a .env file in the working directory is honored)
//
// Example config.yaml:
//
//	globalSettings:
//	  dataFile: listings.yaml
//	  colorMode: dark
//	view:
//	  preset: owners
//	  restorePersisted: true
//
// The view.restorePersisted flag controls whether saved column preferences
// are read back at load time; by default they are discarded in favor of the
// page preset, matching the behavior of the system this tool replaced.
package config
