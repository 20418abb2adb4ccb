package itemset

import (
	"fmt"
	"io"
)

type Formatter struct{}

func (f Formatter) FileExt() string {
	return ".items"
}

func (f Formatter) FormatItemset(w io.Writer, fi *Frequent) error {
	_, err := fmt.Fprintf(w, "%v, %d, %g\n", fi.Items, fi.Frequency, fi.Support)
	return err
}
