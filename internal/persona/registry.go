package persona

import "fmt"

// registry is built once at init and never mutated afterwards, so concurrent
// reads need no synchronization.
var registry = map[ID]Personality{
	SweetNana: sweetNana,
	WiseBubbe: wiseBubbe,
	CoolGrams: coolGrams,
}

// Default is the personality assigned to every new session.
func Default() Personality {
	return sweetNana
}

// GetByID looks up a personality. Unknown ids are an error, never coerced.
func GetByID(id ID) (Personality, error) {
	p, ok := registry[id]
	if !ok {
		return Personality{}, fmt.Errorf("unknown personality: %s", id)
	}
	return p, nil
}

// IsValid reports whether id names one of the fixed personalities.
func IsValid(id ID) bool {
	_, ok := registry[id]
	return ok
}

// GetAll returns every registered personality.
func GetAll() []Personality {
	return []Personality{sweetNana, wiseBubbe, coolGrams}
}
