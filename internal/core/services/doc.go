// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven
// ports (adapters).
//
//   - BuildService: fetch, normalise and write a word list
//   - SettingsService: resolve defaults from configuration
package services
