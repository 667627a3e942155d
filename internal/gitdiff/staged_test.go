package gitdiff

import (
	"testing"
)

const sampleDiff = `diff --git a/.editorconfig b/.editorconfig
index 1111111..2222222 100644
--- a/.editorconfig
+++ b/.editorconfig
@@ -1,4 +1,6 @@
 root = true

 [*]
+indent_style = space
+indent_size = 4
 charset = utf-8
diff --git a/.github/ISSUE_TEMPLATE/security_report.md b/.github/ISSUE_TEMPLATE/security_report.md
index 3333333..4444444 100644
--- a/.github/ISSUE_TEMPLATE/security_report.md
+++ b/.github/ISSUE_TEMPLATE/security_report.md
@@ -10,3 +10,4 @@
 ## Checklist

 - [ ] I searched existing issues for a duplicate report
+- [ ] This report contains no secrets or live credentials
`

const deletionDiff = `diff --git a/old.md b/old.md
deleted file mode 100644
index 5555555..0000000
--- a/old.md
+++ /dev/null
@@ -1,2 +0,0 @@
-gone
-entirely
`

func TestParseChangedFiles(t *testing.T) {
	files, err := ParseChangedFiles([]byte(sampleDiff))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := []string{".editorconfig", ".github/ISSUE_TEMPLATE/security_report.md"}
	if len(files) != len(expected) {
		t.Fatalf("Expected %d files, got %d: %v", len(expected), len(files), files)
	}
	for i, want := range expected {
		if files[i] != want {
			t.Errorf("Expected file %q at index %d, got %q", want, i, files[i])
		}
	}
}

func TestParseChangedFiles_EmptyDiff(t *testing.T) {
	files, err := ParseChangedFiles([]byte("  \n"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if files != nil {
		t.Errorf("Expected no files for an empty diff, got %v", files)
	}
}

func TestParseChangedFiles_DeletedFileSkipped(t *testing.T) {
	files, err := ParseChangedFiles([]byte(deletionDiff))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Expected deleted files to be skipped, got %v", files)
	}
}

func TestChangedLines(t *testing.T) {
	ranges, err := ChangedLines([]byte(sampleDiff))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	ecRanges := ranges[".editorconfig"]
	if len(ecRanges) != 1 {
		t.Fatalf("Expected 1 hunk for .editorconfig, got %d", len(ecRanges))
	}
	if ecRanges[0].Start != 1 || ecRanges[0].Count != 6 {
		t.Errorf("Expected hunk 1,6, got %d,%d", ecRanges[0].Start, ecRanges[0].Count)
	}

	tmplRanges := ranges[".github/ISSUE_TEMPLATE/security_report.md"]
	if len(tmplRanges) != 1 {
		t.Fatalf("Expected 1 hunk for the template, got %d", len(tmplRanges))
	}
	if tmplRanges[0].Start != 10 {
		t.Errorf("Expected hunk start 10, got %d", tmplRanges[0].Start)
	}
}

func TestChangedLines_EmptyDiff(t *testing.T) {
	ranges, err := ChangedLines(nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(ranges) != 0 {
		t.Errorf("Expected empty map, got %v", ranges)
	}
}
