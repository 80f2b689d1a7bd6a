package solver

import "fmt"

// FormatParseRecord renders the parse-complete announcement: an unquoted
// Time float, a literal "--" Result. Hand-formatted with fmt.Sprintf
// rather than encoding/json, since json.Marshal would quote Time
// consistently with the SAT/UNSAT records below and break the required
// asymmetric quoting.
func FormatParseRecord(instance string, seconds float64) string {
	return fmt.Sprintf(`{"Instance": %q, "Time": %.2f, "Result": "--"}`, instance, seconds)
}

// FormatSATRecord renders a SAT result record, Time quoted as a string and
// Solution set to sol.Record()'s "<var> <true|false> ..." pairs.
func FormatSATRecord(instance string, seconds float64, sol *Solution) string {
	return fmt.Sprintf(`{"Instance": %q, "Time": %q, "Result": "SAT", "Solution": %q}`,
		instance, fmt.Sprintf("%.2f", seconds), sol.Record())
}

// FormatUNSATRecord renders an UNSAT result record, Time quoted as a string.
func FormatUNSATRecord(instance string, seconds float64) string {
	return fmt.Sprintf(`{"Instance": %q, "Time": %q, "Result": "UNSAT"}`,
		instance, fmt.Sprintf("%.2f", seconds))
}
