// Package updater implements release checks against GitHub and binary
// self-update: a non-blocking cached version banner at startup and an
// explicit download-verify-replace flow for the update command.
package updater
