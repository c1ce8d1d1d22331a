// Package keys resolves upstream API credentials from the process
// environment and an optional local key-value file.
package keys

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// The recognized credential names, one per upstream API
const (
	// FREDAPIKey authenticates requests to the St. Louis Fed FRED API
	FREDAPIKey = "FRED_API_KEY"

	// ECOSAPIKey authenticates requests to the Bank of Korea ECOS API
	ECOSAPIKey = "BOK_API_KEY"
)

// known returns the recognized credential names
func known() []string {
	return []string{
		FREDAPIKey,
		ECOSAPIKey,
	}
}

// Load resolves the recognized API credentials. Environment values
// always win; the key-value file at path, if it exists, fills in names
// still empty (NAME=VALUE lines, # comments). An unset credential
// resolves to the empty string, which is a valid state.
//
// The returned error is advisory only -- an unreadable or malformed
// file never fails the load, the affected values just stay empty
func Load(path string) (map[string]string, error) {
	creds := make(map[string]string, len(known()))

	for _, name := range known() {
		creds[name] = os.Getenv(name)
	}

	if path == "" {
		return creds, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return creds, nil // no file, nothing to fill
		}

		return creds, fmt.Errorf("unable to stat credential file: %w", err)
	}

	fileValues, err := godotenv.Read(path)
	if err != nil {
		return creds, fmt.Errorf("unable to read credential file: %w", err)
	}

	// The file only fills gaps, it never overrides the environment
	for _, name := range known() {
		if creds[name] == "" {
			creds[name] = fileValues[name]
		}
	}

	return creds, nil
}
