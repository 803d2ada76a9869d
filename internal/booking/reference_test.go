package booking

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceShape = regexp.MustCompile(`^TOM-[0-9A-Z]+-[0-9A-Z]{5}$`)

func TestGenerateShape(t *testing.T) {
	gen := NewReferenceGenerator("TOM")

	ref := gen.Generate()
	assert.Regexp(t, referenceShape, ref)
}

func TestGenerateTimestampSegment(t *testing.T) {
	gen := &ReferenceGenerator{
		prefix: "TOM",
		now:    func() time.Time { return time.UnixMilli(36) },
	}

	// 36 ms since epoch is "10" in base36.
	ref := gen.Generate()
	assert.Regexp(t, `^TOM-10-[0-9A-Z]{5}$`, ref)
}

func TestGenerateUniqueness(t *testing.T) {
	gen := NewReferenceGenerator("TOM")

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := gen.Generate()
		require.False(t, seen[ref], "duplicate reference %q", ref)
		seen[ref] = true
	}
}
