package calc

// Vars holds the value of each variable A through Z. The zero value has every
// variable set to 0.
type Vars [26]float64

// Get returns the value of the variable with the given name, which must be a
// letter. Lowercase names fold to uppercase.
func (v *Vars) Get(name byte) float64 {
	return v[slot(name)]
}

// Set sets the value of the variable with the given name, which must be a
// letter. Lowercase names fold to uppercase.
func (v *Vars) Set(name byte, val float64) {
	v[slot(name)] = val
}

// slot gets the index of a variable name. Panics if name is not a letter.
func slot(name byte) int {
	switch {
	case 'A' <= name && name <= 'Z':
		return int(name - 'A')
	case 'a' <= name && name <= 'z':
		return int(name - 'a')
	default:
		panic("calc: invalid variable name " + string(rune(name)))
	}
}
