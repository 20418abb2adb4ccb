package rules

import (
	"fmt"
	"io"
)

type Formatter struct{}

func (f Formatter) FileExt() string {
	return ".rules"
}

func (f Formatter) FormatRule(w io.Writer, r *Rule) error {
	_, err := fmt.Fprintf(w, "%v -> %v, %g, %g, %g\n",
		r.Antecedent, r.Consequent, r.Support, r.Confidence, r.Lift)
	return err
}
