package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var remoteNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// RemoteNameFormat validates the name of a locally registered appliance.
// Names contain only letters, numbers, dots, hyphens and underscores and
// must start and end with a letter or number.
func RemoteNameFormat(name string) error {
	if name == "" {
		return fmt.Errorf("remote name cannot be empty")
	}

	if !remoteNameRegex.MatchString(name) {
		return fmt.Errorf("remote name '%s' must contain only letters, numbers, dots (.), hyphens (-), and underscores (_)", name)
	}

	first, last := name[:1], name[len(name)-1:]
	if strings.ContainsAny(first, "-_.") || strings.ContainsAny(last, "-_.") {
		return fmt.Errorf("remote name '%s' cannot start or end with a dot, hyphen or underscore", name)
	}

	return nil
}
