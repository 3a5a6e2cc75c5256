// internal/protocol/parse.go
package protocol

import "strings"

// Parse extracts a command from one request line.
//
// This is not a JSON parser. The vocabulary and field set are closed,
// so the scan is plain substring search over the whole line: field
// lookup is NOT scoped to the enclosing object, field order is
// irrelevant, and unrelated surrounding text is tolerated. Existing
// remote callers depend on exactly this tolerance, so the whole-line
// search is kept as a compatibility contract.
//
// Any line without a recognizable command yields CmdUnknown.
func Parse(line string) Command {
	cmd := Command{Type: CmdUnknown}

	// Locate the command key and the value after its colon.
	pos := strings.Index(line, `"cmd"`)
	if pos < 0 {
		return cmd
	}
	colon := strings.IndexByte(line[pos:], ':')
	if colon < 0 {
		return cmd
	}
	p := pos + colon + 1
	for p < len(line) && (line[p] == ' ' || line[p] == '"') {
		p++
	}
	rest := line[p:]

	switch {
	case strings.HasPrefix(rest, "write_register"):
		cmd.Type = CmdWriteRegister
		cmd.Addr = uint8(intField(line, `"addr"`))
		cmd.Value = uint8(intField(line, `"value"`))

	case strings.HasPrefix(rest, "write_bulk"):
		cmd.Type = CmdWriteBulk
		cmd.Registers = scanBulkRegisters(line)
		cmd.PATable = scanPATable(line)

	case strings.HasPrefix(rest, "read_register"):
		cmd.Type = CmdReadRegister
		cmd.Addr = uint8(intField(line, `"addr"`))

	case strings.HasPrefix(rest, "ping"):
		cmd.Type = CmdPing
	}

	return cmd
}

// intField finds key anywhere in the line and parses the decimal
// integer after the following colon. A missing key, missing colon or
// missing digits all yield 0. Values are truncated to 8 bits by the
// callers, never rejected.
func intField(line, key string) int {
	pos := strings.Index(line, key)
	if pos < 0 {
		return 0
	}
	colon := strings.IndexByte(line[pos:], ':')
	if colon < 0 {
		return 0
	}
	return scanInt(line, pos+colon+1)
}

// scanInt parses a decimal integer at p: optional leading spaces, an
// optional sign, then digits. Stops at the first non-digit. No digits
// means 0.
func scanInt(s string, p int) int {
	for p < len(s) && (s[p] == ' ' || s[p] == '\t') {
		p++
	}
	neg := false
	if p < len(s) && (s[p] == '-' || s[p] == '+') {
		neg = s[p] == '-'
		p++
	}
	v := 0
	for p < len(s) && s[p] >= '0' && s[p] <= '9' {
		v = v*10 + int(s[p]-'0')
		p++
	}
	if neg {
		return -v
	}
	return v
}

// scanBulkRegisters collects quoted-key/integer-value pairs from the
// object following the "registers" key. The scan is character-wise:
// the digits inside a quote give the address, the integer after the
// next colon gives the value. It stops at the matching brace or after
// MaxBulkRegisters pairs, whichever comes first.
func scanBulkRegisters(line string) []RegisterPair {
	pos := strings.Index(line, `"registers"`)
	if pos < 0 {
		return nil
	}
	open := strings.IndexByte(line[pos:], '{')
	if open < 0 {
		return nil
	}

	var pairs []RegisterPair
	p := pos + open + 1
	for p < len(line) && line[p] != '}' && len(pairs) < MaxBulkRegisters {
		if line[p] == '"' {
			p++
			addr := scanInt(line, p)
			for p < len(line) && line[p] != ':' {
				p++
			}
			if p < len(line) && line[p] == ':' {
				p++
				value := scanInt(line, p)
				pairs = append(pairs, RegisterPair{
					Addr:  uint8(addr),
					Value: uint8(value),
				})
			}
		}
		p++
	}
	return pairs
}

// scanPATable collects up to MaxPATableEntries digit runs from the
// array following the "pa_table" key. Scanning stops at ']' or at the
// entry cap. Entries not supplied are the backend's problem (padded
// with zeros there, not here).
func scanPATable(line string) []uint8 {
	pos := strings.Index(line, `"pa_table"`)
	if pos < 0 {
		return nil
	}
	open := strings.IndexByte(line[pos:], '[')
	if open < 0 {
		return nil
	}

	var vals []uint8
	p := pos + open + 1
	for p < len(line) && line[p] != ']' && len(vals) < MaxPATableEntries {
		if line[p] >= '0' && line[p] <= '9' {
			vals = append(vals, uint8(scanInt(line, p)))
			for p < len(line) && line[p] >= '0' && line[p] <= '9' {
				p++
			}
		}
		p++
	}
	return vals
}
