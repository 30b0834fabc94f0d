package objects

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Serialize renders a Commit to its canonical byte form:
//
//	parent P
//	second_parent Q
//	timestamp T
//	file PATH HASH      (zero or more, sorted by PATH)
//
//	MESSAGE
//
// Field order and file sort order are fixed so that two commits with
// identical content, including an identical timestamp, always serialize to
// identical bytes — the hex SHA-1 of these bytes is the commit id (see
// ComputeID). This mirrors the teacher's header-lines-then-blank-line-then-
// body canonical text format for CommitObj, flattened to gitlet's
// single-level path->blob map.
func Serialize(c *Commit) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "parent %s\n", string(c.Parent))
	fmt.Fprintf(&buf, "second_parent %s\n", string(c.SecondParent))
	fmt.Fprintf(&buf, "timestamp %d\n", c.Timestamp.UnixNano())

	paths := make([]string, 0, len(c.Files))
	for p := range c.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		fmt.Fprintf(&buf, "file %s %s\n", p, string(c.Files[p]))
	}

	buf.WriteByte('\n')
	buf.WriteString(c.Message)
	return buf.Bytes()
}

// ComputeID returns the content-derived id of c. It does not mutate c.ID.
func ComputeID(c *Commit) Hash {
	return HashBytes(Serialize(c))
}

// Deserialize parses bytes produced by Serialize back into a Commit. The
// caller is responsible for setting the resulting Commit's ID field (the
// object store's on-disk layout already keys commits by id).
func Deserialize(data []byte) (*Commit, error) {
	idx := bytes.Index(data, []byte("\n\n"))
	if idx < 0 {
		return nil, fmt.Errorf("deserialize commit: missing header/message separator")
	}
	header := string(data[:idx])
	message := string(data[idx+2:])

	c := &Commit{Message: message, Files: map[string]Hash{}}
	for _, line := range strings.Split(header, "\n") {
		if line == "" {
			continue
		}
		key, rest, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("deserialize commit: malformed line %q", line)
		}
		switch key {
		case "parent":
			c.Parent = Hash(rest)
		case "second_parent":
			c.SecondParent = Hash(rest)
		case "timestamp":
			ns, err := strconv.ParseInt(rest, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("deserialize commit: bad timestamp %q: %w", rest, err)
			}
			c.Timestamp = timeFromUnixNano(ns)
		case "file":
			// The hash never contains a space, so split at the last one:
			// the path itself may contain spaces.
			sp := strings.LastIndexByte(rest, ' ')
			if sp < 0 {
				return nil, fmt.Errorf("deserialize commit: malformed file entry %q", rest)
			}
			c.Files[rest[:sp]] = Hash(rest[sp+1:])
		default:
			return nil, fmt.Errorf("deserialize commit: unknown header key %q", key)
		}
	}
	return c, nil
}
