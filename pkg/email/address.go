package email

import (
	"fmt"
	"regexp"
	"strings"
)

// namedAddressRegex splits `Name <addr>`. The name may be empty.
var namedAddressRegex = regexp.MustCompile(`^(.*?)\s*<([^<>]+)>$`)

// FormatAddress normalises a raw sender value into the "Name <addr>" or
// "addr" shape accepted by mail providers.
//
// A value that already carries angle brackets is re-emitted with both parts
// trimmed; if it cannot be split it is returned trimmed as is. A bare address,
// or one with an empty name, gets defaultName attached when one is given.
// Formatting is idempotent.
func FormatAddress(raw, defaultName string) string {
	raw = strings.TrimSpace(raw)
	defaultName = strings.TrimSpace(defaultName)

	if strings.Contains(raw, "<") && strings.Contains(raw, ">") {
		m := namedAddressRegex.FindStringSubmatch(raw)
		if m == nil {
			return raw
		}
		name, addr := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		if name == "" {
			name = defaultName
		}
		if name == "" {
			return addr
		}
		return name + " <" + addr + ">"
	}

	if raw != "" && defaultName != "" {
		return defaultName + " <" + raw + ">"
	}

	return raw
}

// ParseAddress validates a formatted address and returns its display name
// and bare address. The bare address must contain both "@" and ".".
func ParseAddress(formatted string) (name, addr string, err error) {
	formatted = strings.TrimSpace(formatted)

	if m := namedAddressRegex.FindStringSubmatch(formatted); m != nil {
		name, addr = strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	} else {
		addr = formatted
	}

	switch {
	case addr == "":
		return "", "", fmt.Errorf("%w: empty address in %q", ErrInvalidAddress, formatted)
	case strings.ContainsAny(addr, "<> \t\r\n"):
		return "", "", fmt.Errorf("%w: malformed address %q", ErrInvalidAddress, formatted)
	case !strings.Contains(addr, "@") || !strings.Contains(addr, "."):
		return "", "", fmt.Errorf("%w: %q must contain \"@\" and \".\"", ErrInvalidAddress, addr)
	}

	return name, addr, nil
}
