// Package files holds the file I/O section. The snippets are shown, not
// executed: the cheat sheet never touches the filesystem.
package files

import (
	"fmt"
	"io"
)

// ReadSnippet is the idiomatic whole-file and line-by-line read.
const ReadSnippet = `data, err := os.ReadFile("file.txt")
if err != nil {
	return err
}
content := string(data)

f, err := os.Open("file.txt")
if err != nil {
	return err
}
defer f.Close()
scanner := bufio.NewScanner(f)
for scanner.Scan() {
	line := scanner.Text()
	_ = line
}
return scanner.Err()`

// WriteSnippet is the idiomatic whole-file write.
const WriteSnippet = `if err := os.WriteFile("file.txt", []byte("Hello, World!"), 0o644); err != nil {
	return err
}`

// Files prints the read and write idioms.
func Files(w io.Writer) {
	fmt.Fprintln(w, "// Reading a file")
	fmt.Fprintln(w, ReadSnippet)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "// Writing to a file")
	fmt.Fprintln(w, WriteSnippet)
}
