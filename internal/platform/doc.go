// Package platform papers over OS differences in filesystem permission
// handling. Unix systems get chmod directly; Windows ignores permission
// bits rather than failing.
package platform
