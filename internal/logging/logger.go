// Package logging constructs the process-wide structured logger.
package logging

import "go.uber.org/zap"

// New returns a configured zap logger. Development mode uses the
// human-readable console encoder; production logs JSON.
func New(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
