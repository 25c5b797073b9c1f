package dbpool

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// In-memory sentinels in the database file path.
// https://www.sqlite.org/inmemorydb.html
var memorySentinels = []string{":memory:", "mode=memory"}

// isMemory reports whether the file path targets a transient in-memory
// database.
func isMemory(file string) bool {
	for _, s := range memorySentinels {
		if strings.Contains(file, s) {
			return true
		}
	}

	return false
}

var (
	pragmaKeyPattern   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	pragmaValuePattern = regexp.MustCompile(`^[^&#=?\s]+$`)
)

// Journal modes accepted by SQLite, canonical spelling.
var journalModes = []string{"DELETE", "TRUNCATE", "PERSIST", "MEMORY", "WAL", "OFF"}

// buildEmbeddedURI concatenates the database file path with a query-string
// encoding of the configured pragmas: key=value pairs joined by "&", in key
// order. An empty pragma map produces no query suffix.
func buildEmbeddedURI(props DatabaseProperties) (string, error) {
	if strings.TrimSpace(props.File) == "" {
		return "", fmt.Errorf("dbpool: database file path is required")
	}

	if len(props.Pragmas) == 0 {
		return props.File, nil
	}

	keys := make([]string, 0, len(props.Pragmas))
	for k := range props.Pragmas {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		v := props.Pragmas[k]
		if err := validatePragma(k, v); err != nil {
			return "", err
		}
		pairs = append(pairs, k+"="+v)
	}

	return props.File + querySeparator(props.File) + strings.Join(pairs, "&"), nil
}

// querySeparator keeps the result a single valid query string when the file
// path itself already carries parameters (for example "file:x?mode=memory").
func querySeparator(uri string) string {
	if strings.Contains(uri, "?") {
		return "&"
	}

	return "?"
}

func validatePragma(key, value string) error {
	if !pragmaKeyPattern.MatchString(key) {
		return fmt.Errorf("dbpool: invalid pragma key %q", key)
	}
	if !pragmaValuePattern.MatchString(value) {
		return fmt.Errorf("dbpool: invalid pragma value %q for key %q", value, key)
	}

	return nil
}

// embeddedDSN builds the driver DSN: the pragma URI from buildEmbeddedURI
// plus the enforced per-connection parameters. Foreign-key checking is always
// on; journal mode and busy timeout are appended when configured. The
// _pragma form is applied by the driver on every connection the pool opens.
func embeddedDSN(props DatabaseProperties) (string, error) {
	uri, err := buildEmbeddedURI(props)
	if err != nil {
		return "", err
	}

	enforced := []string{"_pragma=foreign_keys(1)"}

	if props.JournalMode != "" {
		mode, err := normalizeJournalMode(props.JournalMode)
		if err != nil {
			return "", err
		}
		enforced = append(enforced, "_pragma=journal_mode("+mode+")")
	}

	if props.BusyTimeout != 0 {
		if props.BusyTimeout < 0 {
			return "", fmt.Errorf("dbpool: negative busy timeout %s", props.BusyTimeout)
		}
		enforced = append(enforced, fmt.Sprintf("_pragma=busy_timeout(%d)", props.BusyTimeout.Milliseconds()))
	}

	return uri + querySeparator(uri) + strings.Join(enforced, "&"), nil
}

func normalizeJournalMode(mode string) (string, error) {
	for _, m := range journalModes {
		if strings.EqualFold(mode, m) {
			return m, nil
		}
	}

	return "", fmt.Errorf("dbpool: invalid journal mode %q (supported: %s)", mode, strings.Join(journalModes, ", "))
}
