// Package setting defines the key-value settings store contract.
package setting

import "context"

// GlobalMarkupKey is the settings key holding the storewide markup
// percentage.
const GlobalMarkupKey = "global_markup"

// Repository reads and writes named configuration values.
type Repository interface {
	// Get returns the stored value for key, or ("", nil) when the key has
	// never been set.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, creating or replacing it.
	Set(ctx context.Context, key, value string) error
}
