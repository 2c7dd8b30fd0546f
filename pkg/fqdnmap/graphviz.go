//go:build graphviz

package fqdnmap

// GenerateGraphvizFile writes the map's backing trie as graphviz source
// to file, or to stdout when file is empty.
func (m *Map[V]) GenerateGraphvizFile(file string) error {
	return m.inner.GenerateGraphvizFile(file)
}

// GeneratePDFFile renders the map's backing trie as a PDF.
func (m *Map[V]) GeneratePDFFile(file string) error {
	return m.inner.GeneratePDFFile(file)
}
