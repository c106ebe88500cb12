package acornhunt

import (
	"encoding/json"
	"fmt"

	"github.com/phanxgames/grove/internal/storage"
)

// ProgressKey is the storage key of the level progress.
const ProgressKey = "AcornHuntLevels"

// LoadProgress applies stored progress to c. A missing key leaves the
// catalog's defaults in place.
func LoadProgress(store storage.Store, c *LevelCatalog) error {
	raw, ok, err := store.Get(ProgressKey)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	if !ok {
		return nil
	}
	var status []LevelStatus
	if err := json.Unmarshal([]byte(raw), &status); err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	c.ApplyStatus(status)
	return nil
}

// SaveProgress writes the progress flags of c.
func SaveProgress(store storage.Store, c *LevelCatalog) error {
	raw, err := json.Marshal(c.Status())
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	if err := store.Set(ProgressKey, string(raw)); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
