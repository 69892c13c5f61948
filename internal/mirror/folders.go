package mirror

import (
	"fmt"
	"os"

	"github.com/mkellner/spmirror/internal/sharepoint"
)

// formsFolderName is the reserved folder the server keeps form templates in;
// it is an implementation detail of the remote system and is never mirrored.
const formsFolderName = "Forms"

// MaterializeFolders creates a local directory for every folder item.
// Idempotent: existing directories are left alone, and nothing is ever
// deleted or renamed — the mirror is append/update-only.
func MaterializeFolders(localRoot, webPath string, items []sharepoint.Item) error {
	for _, item := range items {
		if !item.IsFolder() || item.LeafName == formsFolderName {
			continue
		}
		dir := LocalPath(localRoot, webPath, item.ServerRelativePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
