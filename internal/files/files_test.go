package files

import (
	"bytes"
	"strings"
	"testing"
)

func TestFilesPrintsBothSnippets(t *testing.T) {
	var buf bytes.Buffer
	Files(&buf)

	out := buf.String()
	for _, want := range []string{"os.ReadFile", "defer f.Close()", "os.WriteFile"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Index(out, "// Reading") > strings.Index(out, "// Writing") {
		t.Error("read snippet should come before write snippet")
	}
}
