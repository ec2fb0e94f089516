package utils

import "strings"

const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
)

// IsProduction reports whether environment names the production deployment.
// The comparison ignores case.
func IsProduction(environment string) bool {
	return strings.ToLower(environment) == EnvironmentProduction
}

// IsDevelopment reports whether environment names the development deployment.
// The comparison ignores case.
func IsDevelopment(environment string) bool {
	return strings.ToLower(environment) == EnvironmentDevelopment
}
