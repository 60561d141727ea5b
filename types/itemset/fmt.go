package itemset

import (
	"fmt"
	"io"
	"strings"
)

type Formatter struct{}

func (f Formatter) FileExt() string {
	return ".items"
}

func (f Formatter) PatternName(s *Itemset) string {
	return s.String()
}

// FormatPattern writes one itemset per line, its support after a tab.
func (f Formatter) FormatPattern(w io.Writer, s *Itemset, support int) error {
	_, err := fmt.Fprintf(w, "%v\t%d\n", s, support)
	return err
}

// FormatResult renders sets in braced notation, for example
// "{ {a, b} {c} }". The empty result is "{  }".
func (f Formatter) FormatResult(sets []*Itemset) string {
	names := make([]string, 0, len(sets))
	for _, s := range sets {
		names = append(names, f.PatternName(s))
	}
	return "{ " + strings.Join(names, " ") + " }"
}
