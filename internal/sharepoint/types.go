package sharepoint

import "time"

// ItemKind distinguishes folders from files in a library listing
type ItemKind int

const (
	KindFile ItemKind = iota
	KindFolder
)

// Item is one entry of a library listing: a folder or a file.
// Snapshot taken once per library pass; never persisted.
type Item struct {
	// Kind is the object kind reported by the server (FSObjType)
	Kind ItemKind

	// ServerRelativePath is the absolute path within the site (FileRef)
	ServerRelativePath string

	// LeafName is the filesystem-safe name (FileLeafRef). FileRef can carry
	// characters that do not match the stored name, so the leaf is
	// authoritative for the local filename.
	LeafName string

	// Modified is the server-side modification time (files only)
	Modified time.Time
}

// IsFile returns true for file items
func (i Item) IsFile() bool { return i.Kind == KindFile }

// IsFolder returns true for folder items
func (i Item) IsFolder() bool { return i.Kind == KindFolder }

// Library is one document library of the site
type Library struct {
	// Title is the display title of the library
	Title string

	// RootFolderName is the root folder leaf name, used as the local
	// subdirectory name
	RootFolderName string

	// RootFolderPath is the server-relative URL of the root folder
	RootFolderPath string

	// ItemCount is the item total reported by the server; empty libraries
	// are skipped without listing
	ItemCount int
}

// listItemRow is the wire shape of one list item (odata=nometadata)
type listItemRow struct {
	FSObjType   int    `json:"FSObjType"`
	FileRef     string `json:"FileRef"`
	FileLeafRef string `json:"FileLeafRef"`
	Modified    string `json:"Modified"`
}

// listRow is the wire shape of one list (odata=nometadata)
type listRow struct {
	Title      string `json:"Title"`
	ItemCount  int    `json:"ItemCount"`
	RootFolder struct {
		Name              string `json:"Name"`
		ServerRelativeURL string `json:"ServerRelativeUrl"`
	} `json:"RootFolder"`
}
