package output

// RacePublicKeys is the natural key of a race as it appears in URLs.
type RacePublicKeys struct {
	Event    string
	Category string
	Gender   string
	Length   string
}

// RaceInternalKeys is the natural key of a race in storage terms.
type RaceInternalKeys struct {
	Event    string
	Category string
	Gender   string
	Length   string
}
