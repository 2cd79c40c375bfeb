package bucket

import (
	"regexp"
	"strings"

	"github.com/koustreak/miniokit/internal/errs"
)

// S3 bucket naming rules, checked before any server call so invalid names
// never reach the data plane.
var (
	nameChars  = regexp.MustCompile(`^[a-z0-9.-]+$`)
	dottedQuad = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)
)

// ValidateName reports whether name is a legal bucket name:
// 3-63 characters from [a-z0-9.-], no leading or trailing period,
// no consecutive periods, and not shaped like an IPv4 address.
// The returned error names the violated rule.
func ValidateName(name string) error {
	if len(name) < 3 || len(name) > 63 {
		return errs.Newf(errs.ErrKindInvalidInput,
			"bucket name %q must be between 3 and 63 characters", name)
	}
	if !nameChars.MatchString(name) {
		return errs.Newf(errs.ErrKindInvalidInput,
			"bucket name %q may only contain lowercase letters, digits, hyphens, and periods", name)
	}
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return errs.Newf(errs.ErrKindInvalidInput,
			"bucket name %q must not begin or end with a period", name)
	}
	if strings.Contains(name, "..") {
		return errs.Newf(errs.ErrKindInvalidInput,
			"bucket name %q must not contain consecutive periods", name)
	}
	if dottedQuad.MatchString(name) {
		return errs.Newf(errs.ErrKindInvalidInput,
			"bucket name %q must not be formatted as an IP address", name)
	}
	return nil
}
