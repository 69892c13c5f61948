package mirror

import (
	"path/filepath"
	"strings"

	"github.com/mkellner/spmirror/internal/sharepoint"
)

// LocalPath maps a server-relative path into the local tree rooted at
// localRoot, dropping the web's own prefix and translating separators to the
// platform convention. "/sites/Team/Shared Documents/a/b.txt" with web path
// "/sites/Team" becomes localRoot/Shared Documents/a/b.txt.
func LocalPath(localRoot, webPath, serverRelativePath string) string {
	rel := strings.TrimPrefix(serverRelativePath, strings.TrimRight(webPath, "/"))
	rel = strings.TrimPrefix(rel, "/")
	return filepath.Join(localRoot, filepath.FromSlash(rel))
}

// FileTarget resolves a file item to its local directory and filename. The
// directory comes from the translated server path; the filename is the
// item's leaf name, which is authoritative — the path field can carry
// characters that do not match the stored name.
func FileTarget(localRoot, webPath string, item sharepoint.Item) (dir, name string) {
	full := LocalPath(localRoot, webPath, item.ServerRelativePath)
	return filepath.Dir(full), item.LeafName
}
