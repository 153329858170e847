package report

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/common"
	"gopkg.in/yaml.v3"
)

// Table maps symbolic delinquency codes to days-past-due values. Construct
// it once and treat it as read-only; analyses share a single table.
type Table map[string]int

// DefaultTable returns the standard bureau code mapping.
func DefaultTable() Table {
	return Table{
		"XXX": 0,
		"STD": 0,
		"SUB": 91,
		"DBT": 151,
		"LSS": 181,
		"SMA": 61,
		"DDD": 0,
	}
}

// LoadTable reads additional code mappings from a YAML file and layers them
// over the defaults. A code listed in the file wins over the built-in value.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read DPD code file: %w", err)
	}

	var overrides map[string]int
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse DPD code file: %w", err)
	}

	table := DefaultTable()
	for code, days := range overrides {
		table[strings.ToUpper(strings.TrimSpace(code))] = days
	}

	return table, nil
}

// Decode converts a "<dpd>/<code>" payment status into a days-past-due
// count. The dpd field is either a symbolic code from the table or a
// literal day count. Anything that does not split into exactly two fields,
// or whose dpd field is neither, is a malformed status.
func (t Table) Decode(status string) (int, error) {
	parts := strings.Split(status, "/")
	if len(parts) != 2 {
		return 0, fmt.Errorf("status %q: %w", status, common.ErrMalformedStatus)
	}

	dpd := parts[0]
	if days, ok := t[dpd]; ok {
		return days, nil
	}

	days, err := strconv.Atoi(dpd)
	if err != nil {
		return 0, fmt.Errorf("status %q: %w", status, common.ErrMalformedStatus)
	}

	return days, nil
}
