// Package integration exercises the posture loop, runner and lock together
// against the real clock and filesystem.
package integration
