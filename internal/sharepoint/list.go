package sharepoint

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mkellner/spmirror/internal/logging"
)

// documentLibraryTemplate is the list template for document libraries
const documentLibraryTemplate = 101

// ListLibraries returns the visible document libraries of the site
func (c *Client) ListLibraries(ctx context.Context) ([]Library, error) {
	var result struct {
		Value []listRow `json:"value"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"$filter": fmt.Sprintf("BaseTemplate eq %d and Hidden eq false", documentLibraryTemplate),
			"$select": "Title,ItemCount,RootFolder/Name,RootFolder/ServerRelativeUrl",
			"$expand": "RootFolder",
		}).
		SetResult(&result).
		Get("/_api/web/lists")
	if err != nil {
		return nil, &RequestError{Op: "list libraries", Path: c.siteURL, Message: err.Error()}
	}
	if resp.IsError() {
		return nil, classifyError("list libraries", c.siteURL, resp.StatusCode(), resp.String())
	}

	libraries := make([]Library, 0, len(result.Value))
	for _, row := range result.Value {
		libraries = append(libraries, Library{
			Title:          row.Title,
			RootFolderName: row.RootFolder.Name,
			RootFolderPath: row.RootFolder.ServerRelativeURL,
			ItemCount:      row.ItemCount,
		})
	}

	c.logger.Debug("Listed document libraries", logging.F("count", len(libraries)))
	return libraries, nil
}

// ListItems returns the flat item collection of a library, folders and files
// alike. Paging is handled internally; progress (if non-nil) is called with
// the running item total after each page and has no effect on the result.
func (c *Client) ListItems(ctx context.Context, library Library, progress func(retrieved int)) ([]Item, error) {
	var items []Item

	next := fmt.Sprintf("/_api/web/lists/getbytitle('%s')/items", escapePath(library.Title))
	first := true

	for next != "" {
		var page struct {
			Value    []listItemRow `json:"value"`
			NextLink string        `json:"odata.nextLink"`
		}

		req := c.http.R().SetContext(ctx).SetResult(&page)
		if first {
			req.SetQueryParams(map[string]string{
				"$select": "FileRef,FileLeafRef,FSObjType,Modified",
				"$top":    strconv.Itoa(c.pageSize),
			})
			first = false
		}

		resp, err := req.Get(next)
		if err != nil {
			return nil, &RequestError{Op: "list items", Path: library.Title, Message: err.Error()}
		}
		if resp.IsError() {
			return nil, classifyError("list items", library.Title, resp.StatusCode(), resp.String())
		}

		for _, row := range page.Value {
			item := Item{
				ServerRelativePath: row.FileRef,
				LeafName:           row.FileLeafRef,
			}
			if row.FSObjType == 1 {
				item.Kind = KindFolder
			} else {
				item.Kind = KindFile
				modified, err := time.Parse(time.RFC3339, row.Modified)
				if err != nil {
					return nil, &RequestError{
						Op:      "list items",
						Path:    row.FileRef,
						Message: fmt.Sprintf("unparseable Modified value %q", row.Modified),
					}
				}
				item.Modified = modified
			}
			items = append(items, item)
		}

		if progress != nil {
			progress(len(items))
		}

		// nextLink is absolute and already carries the paging token
		next = page.NextLink
	}

	c.logger.Debug("Listed library items",
		logging.F("library", library.Title),
		logging.F("items", len(items)),
	)
	return items, nil
}
