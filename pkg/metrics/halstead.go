package metrics

// HalsteadMetric names which multiset an identifier is encountered for.
type HalsteadMetric int

const (
	// Operators counts syntactic operators (keywords, punctuation, etc).
	Operators HalsteadMetric = iota
	// Operands counts syntactic operands (identifiers, literals, etc).
	Operands
)

// HalsteadBag is an ordered multiset of distinct identifiers, tracking both
// the count of distinct members and the total number of encounters.
// Invariant: Distinct == len(identifiers).
type HalsteadBag struct {
	seen        map[string]struct{}
	identifiers []string
	Distinct    int
	Total       int
}

// NewHalsteadBag returns an empty bag.
func NewHalsteadBag() *HalsteadBag {
	return &HalsteadBag{seen: make(map[string]struct{})}
}

// Encounter records one occurrence of identifier. If identifier has not been
// seen before it is appended (first-seen order) and Distinct is incremented;
// Total is always incremented.
func (b *HalsteadBag) Encounter(identifier string) {
	identifier = guardReservedName(identifier, b.seen)

	if _, ok := b.seen[identifier]; !ok {
		b.seen[identifier] = struct{}{}
		b.identifiers = append(b.identifiers, identifier)
		b.Distinct++
	}

	b.Total++
}

// Identifiers returns the bag's members in first-seen order.
func (b *HalsteadBag) Identifiers() []string {
	return b.identifiers
}

// reservedMappingNames are property names of the host mapping construct
// (e.g. a plain Go map has none, but the guard is preserved for
// bug-compatibility with implementations that store identifiers as the keys
// of a mapping that also carries reserved own-properties).
var reservedMappingNames = map[string]struct{}{
	"__proto__":   {},
	"constructor": {},
	"hasOwnProperty": {},
}

// guardReservedName prefixes identifier with "_" (recursively) while it
// collides with a reserved mapping-construct property name. A plain string
// set does not need this guard; it is preserved only to reproduce observed
// behaviour from map-backed implementations exactly.
func guardReservedName(identifier string, _ map[string]struct{}) string {
	for {
		if _, reserved := reservedMappingNames[identifier]; !reserved {
			return identifier
		}

		identifier = "_" + identifier
	}
}

// HalsteadPair holds the operator and operand bags for one report, plus the
// scalar measures derived from them during finalisation.
type HalsteadPair struct {
	Operators *HalsteadBag
	Operands  *HalsteadBag

	Length     int
	Vocabulary int
	Difficulty float64
	Volume     float64
	Effort     float64
	Bugs       float64
	Time       float64
}

// NewHalsteadPair returns a pair with empty operator/operand bags.
func NewHalsteadPair() *HalsteadPair {
	return &HalsteadPair{
		Operators: NewHalsteadBag(),
		Operands:  NewHalsteadBag(),
	}
}

// Encounter records one occurrence of identifier for the given metric.
func (p *HalsteadPair) Encounter(metric HalsteadMetric, identifier string) {
	switch metric {
	case Operators:
		p.Operators.Encounter(identifier)
	case Operands:
		p.Operands.Encounter(identifier)
	}
}
