package sharepoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type staticToken string

func (t staticToken) Token(ctx context.Context) (string, error) {
	return string(t), nil
}

func TestClient_WebPath(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/_api/web" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ServerRelativeUrl":"/sites/team"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("token-123"), nil)

	webPath, err := client.WebPath(context.Background())
	if err != nil {
		t.Fatalf("WebPath() error = %v", err)
	}
	if webPath != "/sites/team" {
		t.Errorf("WebPath() = %q, want /sites/team", webPath)
	}
	if gotAuth != "Bearer token-123" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}

	// Second call must hit the cache, not the server
	server.Close()
	if _, err := client.WebPath(context.Background()); err != nil {
		t.Errorf("cached WebPath() error = %v", err)
	}
}

func TestClient_ListLibraries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/_api/web/lists" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if filter := r.URL.Query().Get("$filter"); !strings.Contains(filter, "BaseTemplate eq 101") {
			t.Errorf("filter = %q, want document library filter", filter)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"value":[
			{"Title":"Documents","ItemCount":12,"RootFolder":{"Name":"Shared Documents","ServerRelativeUrl":"/sites/team/Shared Documents"}},
			{"Title":"Archive","ItemCount":0,"RootFolder":{"Name":"Archive","ServerRelativeUrl":"/sites/team/Archive"}}
		]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)

	libraries, err := client.ListLibraries(context.Background())
	if err != nil {
		t.Fatalf("ListLibraries() error = %v", err)
	}
	if len(libraries) != 2 {
		t.Fatalf("libraries = %d, want 2", len(libraries))
	}
	if libraries[0].Title != "Documents" || libraries[0].RootFolderName != "Shared Documents" {
		t.Errorf("unexpected first library %+v", libraries[0])
	}
	if libraries[1].ItemCount != 0 {
		t.Errorf("ItemCount = %d, want 0", libraries[1].ItemCount)
	}
}

func TestClient_ListItems_Paging(t *testing.T) {
	var server *httptest.Server
	requests := 0
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if !strings.Contains(r.URL.Path, "getbytitle('Documents')") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		switch requests {
		case 1:
			if top := r.URL.Query().Get("$top"); top != "2" {
				t.Errorf("$top = %q, want 2", top)
			}
			fmt.Fprintf(w, `{"value":[
				{"FSObjType":1,"FileRef":"/sites/team/Documents/sub","FileLeafRef":"sub"},
				{"FSObjType":0,"FileRef":"/sites/team/Documents/a.txt","FileLeafRef":"a.txt","Modified":"2024-03-01T10:00:00Z"}
			],"odata.nextLink":%q}`, server.URL+"/_api/web/lists/getbytitle('Documents')/items?$skiptoken=Paged")
		case 2:
			fmt.Fprint(w, `{"value":[
				{"FSObjType":0,"FileRef":"/sites/team/Documents/sub/b.txt","FileLeafRef":"b.txt","Modified":"2024-03-02T10:00:00Z"}
			]}`)
		default:
			t.Errorf("unexpected request %d", requests)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil, WithPageSize(2))

	var progress []int
	items, err := client.ListItems(context.Background(), Library{Title: "Documents"}, func(retrieved int) {
		progress = append(progress, retrieved)
	})
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	if !items[0].IsFolder() {
		t.Errorf("first item should be a folder: %+v", items[0])
	}
	if !items[1].IsFile() {
		t.Errorf("second item should be a file: %+v", items[1])
	}
	wantModified := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	if !items[1].Modified.Equal(wantModified) {
		t.Errorf("Modified = %v, want %v", items[1].Modified, wantModified)
	}
	if len(progress) != 2 || progress[0] != 2 || progress[1] != 3 {
		t.Errorf("progress = %v, want [2 3]", progress)
	}
}

func TestClient_ListItems_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "access denied", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)

	_, err := client.ListItems(context.Background(), Library{Title: "Documents"}, nil)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %v", err)
	}
	if reqErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", reqErr.StatusCode)
	}
}

func TestClient_Download(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "GetFileByServerRelativeUrl") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, "file body")
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)
	destDir := filepath.Join(t.TempDir(), "Documents", "sub")

	err := client.Download(context.Background(), "/sites/team/Documents/sub/a.txt", destDir, "a.txt")
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(destDir, "a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "file body" {
		t.Errorf("content = %q, want %q", content, "file body")
	}
}

func TestClient_Download_PathTooLong(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `The length of the URL for this request exceeds the configured maxUrlLength value.`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)

	err := client.Download(context.Background(), "/sites/team/Documents/very/deep/path.txt", t.TempDir(), "path.txt")
	if !errors.Is(err, ErrPathTooLong) {
		t.Errorf("expected ErrPathTooLong, got %v", err)
	}
}

func TestClient_Download_OtherFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "locked", http.StatusConflict)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)

	err := client.Download(context.Background(), "/sites/team/Documents/a.txt", t.TempDir(), "a.txt")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrPathTooLong) {
		t.Error("conflict must not classify as path-too-long")
	}
}
