//go:build graphviz

package trie

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fqdntrie/fqdntrie/internal/alphabet"
)

const dotCmd = "dot"

// letterFor returns the lowercased display byte whose fold matches the
// given alphabet index, or '.' for index 0. It scans the full byte range,
// not just letters, so digit, hyphen, underscore and '#' edges (depending
// on the alphabet build tag) render as themselves instead of '?'.
func letterFor(idx uint8) byte {
	if idx == 0 {
		return '.'
	}

	for b := 0; b < 256; b++ {
		if alphabet.Fold(byte(b)) == idx {
			return toLowerByte(byte(b))
		}
	}

	return '?'
}

func toLowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}

	return b
}

// GeneratePDFFile renders the trie as a PDF by piping graphviz source
// through the `dot` binary. file, if non-empty, names the output (a .pdf
// extension is applied); otherwise the PDF is written to stdout.
func (t *Trie[T]) GeneratePDFFile(file string) error {
	var cmd *exec.Cmd

	if file == "" {
		cmd = exec.Command(dotCmd, "-Tpdf")
	} else {
		path := file
		if ext := filepath.Ext(path); ext != ".pdf" {
			path = path[:len(path)-len(ext)] + ".pdf"
		}

		fmt.Fprintf(os.Stderr, "write output in file: %s\n", path)

		cmd = exec.Command(dotCmd, "-Tpdf", "-o", path)
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawning %s: %w", dotCmd, err)
	}

	if err := t.writeDot(stdin); err != nil {
		return err
	}

	_ = stdin.Close()

	return cmd.Wait()
}

// GenerateGraphvizFile writes the trie's graphviz source to file (a .gv
// extension is applied), or to stdout when file is empty.
func (t *Trie[T]) GenerateGraphvizFile(file string) error {
	if file == "" {
		return t.writeDot(os.Stdout)
	}

	path := file
	if ext := filepath.Ext(path); ext != ".gv" {
		path = path[:len(path)-len(ext)] + ".gv"
	}

	fmt.Fprintf(os.Stderr, "write output in file: %s\n", path)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return t.writeDot(f)
}

func (t *Trie[T]) writeDot(w io.Writer) error {
	p := func(format string, args ...any) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}

	if err := p("digraph G {\n"); err != nil {
		return err
	}
	if err := p("    rankdir=LR\n"); err != nil {
		return err
	}
	if err := p("    fontcolor=darkslategray\n"); err != nil {
		return err
	}
	if err := p("    node[shape=ellipse,color=darkslategray]\n"); err != nil {
		return err
	}
	if err := p("    edge[headport=w,colorscheme=dark28]\n"); err != nil {
		return err
	}
	if err := p("    labelloc=top\n"); err != nil {
		return err
	}
	if err := p("    labeljust=l\n"); err != nil {
		return err
	}
	if err := p("    label=\"FQDN RADIX TRIE\\l - %d leaves\\l - %d branching nodes\\l\"\n",
		len(t.leaf), len(t.branching)); err != nil {
		return err
	}

	for i, b := range t.branching {
		peripheries := 2
		if b.escape.IsRootDomain() {
			peripheries = 1
		}

		if err := p("%d [label=\"[%d] pos=-%d\\n[%d] %s\",peripheries=%d]\n",
			i, i, b.pos, b.escape, t.leafFQDN(b.escape), peripheries); err != nil {
			return err
		}
	}

	if err := p("\nnode[shape=none]\n"); err != nil {
		return err
	}

	for i, b := range t.branching {
		for j, c := range b.child {
			if c == b.escape.node() {
				continue
			}

			letter := letterFor(uint8(j))

			if c.IsLeaf() {
				cl := c.asLeaf()
				if err := p("%d[label=\"[%d] %s\"]\n", cl, cl, t.leafFQDN(cl)); err != nil {
					return err
				}
			}

			color := 1 + abs32(int32(c))%8
			if err := p("%d->%d[fontcolor=%d,color=%d,label=\"%c\"]\n", i, int32(c), color, color, letter); err != nil {
				return err
			}
		}
	}

	return p("}\n")
}

func abs32(i int32) int32 {
	if i < 0 {
		return -i
	}

	return i
}
