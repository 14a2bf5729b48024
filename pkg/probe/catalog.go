package probe

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/probekit/probekit/pkg/errors"
)

// Registration is the immutable descriptor binding a probe to a name, a set
// of tags, and a timeout.
type Registration struct {
	// Name uniquely identifies the probe within a catalog; uniqueness is
	// case-insensitive.
	Name string

	// Tags classify the registration. A registration carrying the
	// configured cache tag is eligible for result caching.
	Tags []string

	// Probe is the unit of work to execute.
	Probe Probe

	// Timeout bounds a single probe execution. Zero means no timeout
	// beyond the caller's own deadline.
	Timeout time.Duration
}

// HasTag reports whether the registration carries the given tag.
func (r Registration) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DuplicateNameError reports registrations whose names collide
// case-insensitively. The colliding names are listed in lower case.
type DuplicateNameError struct {
	Names []string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate probe registrations: %s", strings.Join(e.Names, ", "))
}

// Catalog is an immutable, validated list of probe registrations.
type Catalog struct {
	regs []Registration
}

// NewCatalog validates the given registrations and returns a catalog.
// Validation happens once, at construction: an empty name, a nil probe, or
// names that collide case-insensitively are configuration errors that must
// prevent the service from becoming ready.
func NewCatalog(regs ...Registration) (*Catalog, error) {
	seen := make(map[string]bool, len(regs))
	dupset := make(map[string]bool)

	for _, reg := range regs {
		if strings.TrimSpace(reg.Name) == "" {
			return nil, errors.NewConfiguration("probe registration with empty name", nil)
		}
		if reg.Probe == nil {
			return nil, errors.NewConfiguration(fmt.Sprintf("probe registration %q has no probe", reg.Name), nil)
		}

		lower := strings.ToLower(reg.Name)
		if seen[lower] {
			dupset[lower] = true
		}
		seen[lower] = true
	}

	if len(dupset) > 0 {
		dups := make([]string, 0, len(dupset))
		for name := range dupset {
			dups = append(dups, name)
		}
		sort.Strings(dups)
		return nil, errors.NewConfiguration("invalid probe catalog", &DuplicateNameError{Names: dups})
	}

	c := &Catalog{regs: make([]Registration, len(regs))}
	copy(c.regs, regs)
	return c, nil
}

// Registrations returns a copy of the registrations in registration order.
func (c *Catalog) Registrations() []Registration {
	regs := make([]Registration, len(c.regs))
	copy(regs, c.regs)
	return regs
}

// Len returns the number of registrations in the catalog.
func (c *Catalog) Len() int {
	return len(c.regs)
}
