package utils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDownloadImage(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sample.png" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, "image bytes")
	}))
	defer srv.Close()

	f, err := DownloadImage(srv.URL + "/sample.png")
	if err != nil {
		t.Fatalf("DownloadImage: %v", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if filepath.Ext(f.Name()) != ".png" {
		t.Errorf("temporary file %q lost the .png extension", f.Name())
	}
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read downloaded file: %v", err)
	}
	if string(data) != "image bytes" {
		t.Errorf("downloaded content = %q, want %q", data, "image bytes")
	}
}

func TestDownloadImageStatus(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if f, err := DownloadImage(srv.URL + "/missing.png"); err == nil {
		f.Close()
		os.Remove(f.Name())
		t.Fatal("expected an error for a 404 response")
	}

	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}
