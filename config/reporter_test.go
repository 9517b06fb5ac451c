package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func newTestReport(t *testing.T) (*Report, string) {
	t.Helper()
	dest := filepath.Join(t.TempDir(), "report.zip")
	r, err := (&ReporterConfig{Destination: dest}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	return r, dest
}

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReport_Archive(t *testing.T) {
	r, dest := newTestReport(t)

	src := t.TempDir()
	sheet := filepath.Join(src, "main.ucss")
	if err := os.WriteFile(sheet, []byte("* { color: white; }"), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(src, "themes")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(nested, "dark.ucss"), []byte("* { color: black; }"), 0644); err != nil {
		t.Fatal(err)
	}

	r.StoreData("config/config.yaml", []byte("version: 1\n"))
	r.Store("stylesheet", sheet)
	if err := r.StoreCopy("themes", nested); err != nil {
		t.Fatalf("StoreCopy() error: %v", err)
	}
	r.Store("missing", filepath.Join(src, "absent.ucss"))

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	files := readArchive(t, dest)
	want := map[string]string{
		"config/config.yaml": "version: 1\n",
		"stylesheet":         "* { color: white; }",
		"themes/dark.ucss":   "* { color: black; }",
	}
	for name, content := range want {
		if got, ok := files[name]; !ok || got != content {
			t.Errorf("archive entry %s = %q (present %v), want %q", name, got, ok, content)
		}
	}
	if _, ok := files["missing"]; ok {
		t.Error("absent files must be skipped")
	}
	manifest := files["MANIFEST"]
	for _, name := range []string{"config/config.yaml", "stylesheet", "themes", "missing"} {
		if !strings.Contains(manifest, "\t"+name+"\t") {
			t.Errorf("MANIFEST does not list %s:\n%s", name, manifest)
		}
	}
}

func TestReport_StoreCopyVersionsAndCleansUp(t *testing.T) {
	r, dest := newTestReport(t)

	sheet := filepath.Join(t.TempDir(), "main.ucss")
	if err := os.WriteFile(sheet, []byte("first"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.StoreCopy("stylesheet", sheet); err != nil {
		t.Fatalf("StoreCopy() error: %v", err)
	}
	if err := os.WriteFile(sheet, []byte("second"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.StoreCopy("stylesheet", sheet); err != nil {
		t.Fatalf("StoreCopy() error: %v", err)
	}

	scratch := append([]string(nil), r.scratch...)
	if len(scratch) != 2 {
		t.Fatalf("expected 2 scratch directories, got %d", len(scratch))
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	for _, dir := range scratch {
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			os.RemoveAll(dir)
			t.Errorf("expected %s to be removed", dir)
		}
	}
	if _, err := os.Stat(sheet); err != nil {
		t.Errorf("original file must survive: %v", err)
	}

	var contents []string
	for name, data := range readArchive(t, dest) {
		if strings.HasPrefix(name, "stylesheet") {
			contents = append(contents, data)
		}
	}
	if len(contents) != 2 {
		t.Fatalf("expected both copies in archive, got %v", contents)
	}
	if !(contents[0] == "first" && contents[1] == "second") && !(contents[0] == "second" && contents[1] == "first") {
		t.Errorf("unexpected archived copies: %v", contents)
	}
}

func TestReport_StoreCopyMissing(t *testing.T) {
	r, _ := newTestReport(t)
	defer r.Close()

	if err := r.StoreCopy("x", filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for missing source")
	}
	if len(r.scratch) != 0 {
		t.Error("failed copy must not leave scratch directories")
	}
}

func TestReport_Concurrent(t *testing.T) {
	r, dest := newTestReport(t)

	sheet := filepath.Join(t.TempDir(), "main.ucss")
	if err := os.WriteFile(sheet, []byte("* {}"), 0644); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.StoreCopy("stylesheet", sheet); err != nil {
				t.Errorf("StoreCopy() error: %v", err)
			}
		}()
	}
	wg.Wait()

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	count := 0
	for name := range readArchive(t, dest) {
		if strings.HasPrefix(name, "stylesheet") {
			count++
		}
	}
	if count != 8 {
		t.Errorf("expected 8 archived copies, got %d", count)
	}
}

func TestReport_StorePanicsOnOverwrite(t *testing.T) {
	r, _ := newTestReport(t)
	defer r.Close()

	r.Store("final.log", "a.log")
	r.Store("final.log", "a.log")

	defer func() {
		if recover() == nil {
			t.Error("expected panic when replacing stored path")
		}
	}()
	r.Store("final.log", "b.log")
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Error("nil report must have no name")
	}
	r.Store("x", "y")
	r.StoreData("x", nil)
	if err := r.StoreCopy("x", "y"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}

func TestReportClose_Twice(t *testing.T) {
	r, _ := newTestReport(t)
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() should be a no-op, got: %v", err)
	}
}
