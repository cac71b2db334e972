package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects names that are empty or could address anything
// but a single file in the asset directory.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
