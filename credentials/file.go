package credentials

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultPath returns the standard credentials file location,
// ~/.genora/credentials.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".genora", "credentials"), nil
}

// FileStore reads credentials from a netrc-format file. The zero value
// reads from DefaultPath. Machine selects the entry for a specific API
// host; when empty the "default" entry wins, then the first entry in the
// file.
type FileStore struct {
	Path    string
	Machine string
}

var _ Store = (*FileStore)(nil)

// Lookup reads and parses the credentials file. Missing files, missing
// entries, and unparseable contents all resolve to ErrNotFound.
func (s *FileStore) Lookup() (Credentials, error) {
	path := s.Path
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Credentials{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		path = p
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credentials{}, ErrNotFound
		}
		return Credentials{}, fmt.Errorf("credentials: open %s: %w", path, err)
	}
	defer f.Close()

	entries, err := parseNetrc(f)
	if err != nil {
		return Credentials{}, fmt.Errorf("credentials: read %s: %w", path, err)
	}

	entry, ok := selectEntry(entries, s.Machine)
	if !ok {
		return Credentials{}, ErrNotFound
	}
	return Credentials{Identifier: entry.login, Token: entry.password}, nil
}

type netrcEntry struct {
	machine  string
	login    string
	password string
}

// parseNetrc scans the word stream of a netrc file into ordered entries.
// Unrecognized tokens (account, macdef bodies) are skipped; truncated
// trailing entries are dropped rather than rejected.
func parseNetrc(r io.Reader) ([]netrcEntry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var entries []netrcEntry
	var cur *netrcEntry

	flush := func() {
		if cur != nil && cur.machine != "" {
			entries = append(entries, *cur)
		}
		cur = nil
	}

	for scanner.Scan() {
		switch scanner.Text() {
		case "machine":
			flush()
			if !scanner.Scan() {
				break
			}
			cur = &netrcEntry{machine: scanner.Text()}
		case "default":
			flush()
			cur = &netrcEntry{machine: "default"}
		case "login":
			if scanner.Scan() && cur != nil {
				cur.login = scanner.Text()
			}
		case "password":
			if scanner.Scan() && cur != nil {
				cur.password = scanner.Text()
			}
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func selectEntry(entries []netrcEntry, machine string) (netrcEntry, bool) {
	if machine != "" {
		for _, e := range entries {
			if e.machine == machine {
				return e, true
			}
		}
		return netrcEntry{}, false
	}
	for _, e := range entries {
		if e.machine == "default" {
			return e, true
		}
	}
	if len(entries) > 0 {
		return entries[0], true
	}
	return netrcEntry{}, false
}
