// Package config manages the user-level configuration file
// (~/.t3mono/config.yaml) and T3MONO_* environment overrides, providing
// defaults for the create command's auth provider and git behavior.
package config
