package sharepoint

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mkellner/spmirror/internal/logging"
)

// maxErrorBody caps how much of an error response is read for classification
const maxErrorBody = 8 << 10

// Download fetches a file by its server-relative path into destDir/destName,
// overwriting any existing file. Returns an error wrapping ErrPathTooLong
// when the server rejects the request URL as over its length limit; any
// other failure is a *RequestError.
func (c *Client) Download(ctx context.Context, serverRelativePath, destDir, destName string) error {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return &RequestError{Op: "download", Path: serverRelativePath, Message: err.Error()}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(fmt.Sprintf("/_api/web/GetFileByServerRelativeUrl('%s')/$value", escapePath(serverRelativePath)))
	if err != nil {
		return &RequestError{Op: "download", Path: serverRelativePath, Message: err.Error()}
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.IsError() {
		raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
		return classifyError("download", serverRelativePath, resp.StatusCode(), string(raw))
	}

	target := filepath.Join(destDir, destName)
	out, err := os.Create(target)
	if err != nil {
		return &RequestError{Op: "download", Path: serverRelativePath, Message: err.Error()}
	}

	if _, err := io.Copy(out, body); err != nil {
		out.Close()
		os.Remove(target)
		return &RequestError{Op: "download", Path: serverRelativePath, Message: err.Error()}
	}
	if err := out.Close(); err != nil {
		return &RequestError{Op: "download", Path: serverRelativePath, Message: err.Error()}
	}

	c.logger.Debug("Downloaded file",
		logging.F("source", serverRelativePath),
		logging.F("target", target),
	)
	return nil
}
