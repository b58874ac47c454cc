// Package envfile parses shell-style environment files used for seed
// path overrides (seed.env).
package envfile

import (
	"bufio"
	"os"
	"strings"
)

// Parse reads a shell-style env file into a map. Blank lines, comments
// and lines without a = are skipped; the value keeps everything after
// the first =, with a matching pair of surrounding quotes removed.
func Parse(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	vars := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if key, value, ok := parseLine(scanner.Text()); ok {
			vars[key] = value
		}
	}
	return vars, scanner.Err()
}

// ParseOptional parses an env file that may not exist. A missing file
// returns an empty map, not an error.
func ParseOptional(path string) (map[string]string, error) {
	vars, err := Parse(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return vars, nil
}

// parseLine splits a single KEY=VALUE line. ok is false for blank
// lines, comments and lines with no = at all.
func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	key, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), unquote(strings.TrimSpace(value)), true
}

// unquote strips one pair of matching single or double quotes.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	if first, last := s[0], s[len(s)-1]; first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
