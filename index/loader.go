package index

import (
	"bufio"
	"io"
	"strings"
)

import (
	"github.com/timtadh/apriori/config"
)

// Load ingests delimited text, one transaction per line, and returns a
// frozen index. Empty fields are skipped, so a blank line is an empty
// transaction (it still counts toward the total).
func Load(conf *config.Config, delim string, input io.Reader) (*TransactionIndex, error) {
	ti, err := New(conf)
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := scanner.Text()
		transaction := make([]string, 0, 10)
		for _, col := range strings.Split(line, delim) {
			if col == "" {
				continue
			}
			transaction = append(transaction, col)
		}
		err := ti.Add(transaction)
		if err != nil {
			ti.Close()
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		ti.Close()
		return nil, err
	}
	err = ti.Freeze()
	if err != nil {
		ti.Close()
		return nil, err
	}
	return ti, nil
}
