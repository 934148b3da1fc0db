package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// consoleReader prompts for and reads interactive answers.
type consoleReader struct {
	in  *bufio.Scanner
	out io.Writer
}

func newConsoleReader(in io.Reader, out io.Writer) *consoleReader {
	return &consoleReader{in: bufio.NewScanner(in), out: out}
}

func (c *consoleReader) readInput(prompt string) string {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *consoleReader) readYesNo(prompt string, def bool) bool {
	defStr := "N"
	if def {
		defStr = "Y"
	}
	answer := strings.ToUpper(c.readInput(fmt.Sprintf("%s (Y/N) [%s]: ", prompt, defStr)))
	if answer == "" {
		return def
	}
	return strings.HasPrefix(answer, "Y")
}
