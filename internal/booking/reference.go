package booking

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	referenceRandLen = 5
	base36Alphabet   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// ReferenceGenerator produces human-readable booking references of the
// form PREFIX-TIMESTAMP-RANDOM, e.g. TOM-MB3K2J1T-X7Q9A. The timestamp
// is the current millisecond clock in base36 and the suffix is five
// random base36 characters, all uppercase. Uniqueness is additionally
// enforced by the bookings table's unique index on the reference column.
type ReferenceGenerator struct {
	prefix string
	now    func() time.Time
}

// NewReferenceGenerator creates a generator with the given property
// code prefix.
func NewReferenceGenerator(prefix string) *ReferenceGenerator {
	return &ReferenceGenerator{
		prefix: prefix,
		now:    time.Now,
	}
}

// Generate returns a new booking reference.
func (g *ReferenceGenerator) Generate() string {
	timestamp := strings.ToUpper(strconv.FormatInt(g.now().UnixMilli(), 36))

	suffix := make([]byte, referenceRandLen)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}

	return g.prefix + "-" + timestamp + "-" + string(suffix)
}
