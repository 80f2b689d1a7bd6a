package solver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS parses text in the DIMACS CNF format: a required problem
// line, comments starting with 'c' or blank lines anywhere, and clauses
// as whitespace-separated signed integers terminated by a literal 0. A
// clause may span multiple lines, a token-stream treatment rather than a
// line-oriented one:
//
//   - The problem line is mandatory, not optional: "p cnf <nvars>
//     <nclauses>" must be the first non-comment, non-blank line, and must
//     have exactly four fields.
//   - A variable the problem line didn't declare is not an error; it
//     silently widens the variable universe, so no "too many vars" check
//     is enforced.
//   - An unterminated trailing clause at EOF (tokens collected but never
//     closed by a 0) is a parse error rather than an implicit close.
//
// The declared clause count is read but not enforced against the actual
// count: it's metadata for downstream tooling, not a correctness check.
func ParseDIMACS(r io.Reader) ([][]int, error) {
	var sawHeader bool
	var clauses [][]int
	var clause []int
	var haveTokens bool

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for s.Scan() {
		line := s.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == 'c' {
			continue
		}
		if trimmed == "%" {
			break
		}
		if trimmed[0] == 'p' {
			if sawHeader {
				return nil, fmt.Errorf("multiple problem lines")
			}
			fields := strings.Fields(trimmed)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, fmt.Errorf("malformed problem line %q", line)
			}
			if _, err := strconv.Atoi(fields[2]); err != nil {
				return nil, fmt.Errorf("malformed #vars in problem line: %s", err)
			}
			if _, err := strconv.Atoi(fields[3]); err != nil {
				return nil, fmt.Errorf("malformed #clauses in problem line: %s", err)
			}
			sawHeader = true
			continue
		}
		if !sawHeader {
			return nil, fmt.Errorf("clause data before problem line: %q", line)
		}
		for _, field := range strings.Fields(trimmed) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid literal %q: %s", field, err)
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
				haveTokens = false
			} else {
				clause = append(clause, n)
				haveTokens = true
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if !sawHeader {
		return nil, fmt.Errorf("missing problem line")
	}
	if haveTokens {
		return nil, fmt.Errorf("unterminated clause at end of input: %v", clause)
	}
	return clauses, nil
}

// WriteDIMACS renders clauses back to DIMACS text: a problem line computed
// from the distinct variables actually referenced (not from any header the
// clauses may once have been parsed under) and the clause count, then one
// line per clause, each a space-joined literal list with a trailing " 0";
// an empty clause renders as the bare literal "0".
func WriteDIMACS(w io.Writer, clauses [][]int) error {
	vars := make(map[int]struct{})
	for _, clause := range clauses {
		for _, n := range clause {
			if n < 0 {
				n = -n
			}
			vars[n] = struct{}{}
		}
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", len(vars), len(clauses)); err != nil {
		return err
	}
	for _, clause := range clauses {
		fields := make([]string, 0, len(clause)+1)
		for _, n := range clause {
			fields = append(fields, strconv.Itoa(n))
		}
		fields = append(fields, "0")
		if _, err := fmt.Fprintln(w, strings.Join(fields, " ")); err != nil {
			return err
		}
	}
	return nil
}
