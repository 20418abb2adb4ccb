package itemset

import (
	"bufio"
	"io"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// Load reads the line oriented basket format: one transaction per
// line, items are whitespace separated opaque labels. Duplicate items
// within a line are dropped and blank lines contribute nothing.
func Load(input io.Reader) ([]Transaction, error) {
	txs := make([]Transaction, 0, 10)
	scanner := bufio.NewScanner(input)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			errors.Logf("DEBUG", "input line %d was empty, skipped", line)
			continue
		}
		txs = append(txs, NewTransaction(fields...))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return txs, nil
}
