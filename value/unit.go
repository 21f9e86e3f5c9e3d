// SPDX-License-Identifier: MIT

package value

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Dimension holds the SI base exponents:
// length, mass, time, current, temperature, amount, luminosity.
type Dimension [7]int8

// Prefix is a decimal unit prefix such as "k" (1e3) or "m" (1e-3).
// Scientific prefixes are the ones eligible for automatic display selection.
type Prefix struct {
	Name       string
	Factor     float64
	Scientific bool
}

// NoPrefix is the identity prefix.
var NoPrefix = Prefix{Name: "", Factor: 1, Scientific: true}

// UnitDef describes one named unit: its base dimension and its scale to the
// SI base unit of that dimension.
type UnitDef struct {
	Name     string
	Base     Dimension
	Scale    float64
	Prefixed bool // accepts decimal prefixes
}

// Unit is a physical quantity. The magnitude is stored in SI base units;
// a plain unit ("cm" with no number) carries no magnitude at all.
// When fixPrefix is false the display prefix is recomputed from the magnitude.
type Unit struct {
	mag       float64
	valued    bool
	def       *UnitDef
	prefix    Prefix
	fixPrefix bool
}

// NewUnit builds v expressed in prefix·def, e.g. NewUnit(5, meter, centi) is 5 cm.
func NewUnit(v float64, def *UnitDef, p Prefix) Unit {
	return Unit{mag: v * p.Factor * def.Scale, valued: true, def: def, prefix: p}
}

// PlainUnit builds a unit without magnitude, e.g. "cm".
func PlainUnit(def *UnitDef, p Prefix) Unit {
	return Unit{def: def, prefix: p}
}

// ParseUnit resolves name against the built-in table and attaches v.
func ParseUnit(v float64, name string) (Unit, error) {
	def, p, err := LookupUnit(name)
	if err != nil {
		return Unit{}, err
	}
	return NewUnit(v, def, p), nil
}

// Kind implements Value.
func (Unit) Kind() Kind { return KindUnit }

// Value returns the magnitude in SI base units, and false for a plain unit.
func (u Unit) Value() (float64, bool) { return u.mag, u.valued }

// Def returns the unit definition.
func (u Unit) Def() *UnitDef { return u.def }

// Prefix returns the prefix the unit was built or fixed with.
func (u Unit) Prefix() Prefix { return u.prefix }

// FixPrefix reports whether the display prefix is pinned.
func (u Unit) FixPrefix() bool { return u.fixPrefix }

// WithValue returns a copy of u carrying the base magnitude mag.
func (u Unit) WithValue(mag float64) Unit {
	u.mag, u.valued = mag, true
	return u
}

// To returns a copy of u displayed with prefix p, pinned.
func (u Unit) To(p Prefix) Unit {
	u.prefix, u.fixPrefix = p, true
	return u
}

// EqualBase reports whether a and b measure the same dimension.
func EqualBase(a, b Unit) bool {
	if a.def == nil || b.def == nil {
		return a.def == b.def
	}
	return a.def.Base == b.def.Base
}

// DisplayValue returns the magnitude expressed in the display prefix and unit.
func (u Unit) DisplayValue() (float64, Prefix) {
	p := u.displayPrefix()
	return u.mag / (u.def.Scale * p.Factor), p
}

// String renders "5 cm", or just "cm" for a plain unit.
func (u Unit) String() string {
	if u.def == nil {
		return ""
	}
	if !u.valued {
		return u.prefix.Name + u.def.Name
	}
	v, p := u.DisplayValue()
	return strconv.FormatFloat(v, 'g', 14, 64) + " " + p.Name + u.def.Name
}

// displayPrefix picks the scientific prefix keeping the shown number near 1..1000.
// The current prefix is kept while it stays within roughly two decades of that range.
func (u Unit) displayPrefix() Prefix {
	if u.fixPrefix || !u.def.Prefixed || u.mag == 0 || !u.valued {
		return u.prefix
	}
	abs := math.Abs(u.mag)
	diff := func(p Prefix) float64 {
		return math.Log10(abs/(p.Factor*u.def.Scale)) - 1.2
	}
	best := u.prefix
	bestDiff := diff(best)
	if bestDiff > -2.200001 && bestDiff < 1.800001 {
		return best
	}
	bestDiff = math.Abs(bestDiff)
	for _, p := range scientificPrefixes {
		d := math.Abs(diff(p))
		if d < bestDiff || (d == bestDiff && len(p.Name) < len(best.Name)) {
			best, bestDiff = p, d
		}
	}
	return best
}

var prefixes = map[string]Prefix{
	"n":  {Name: "n", Factor: 1e-9, Scientific: true},
	"u":  {Name: "u", Factor: 1e-6, Scientific: true},
	"m":  {Name: "m", Factor: 1e-3, Scientific: true},
	"c":  {Name: "c", Factor: 1e-2},
	"d":  {Name: "d", Factor: 1e-1},
	"da": {Name: "da", Factor: 1e1},
	"h":  {Name: "h", Factor: 1e2},
	"k":  {Name: "k", Factor: 1e3, Scientific: true},
	"M":  {Name: "M", Factor: 1e6, Scientific: true},
	"G":  {Name: "G", Factor: 1e9, Scientific: true},
	"T":  {Name: "T", Factor: 1e12, Scientific: true},
}

var scientificPrefixes = func() []Prefix {
	out := []Prefix{NoPrefix}
	for _, p := range prefixes {
		if p.Scientific {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Factor < out[j].Factor })
	return out
}()

// Built-in units. The table is deliberately small: unit parsing and the full
// definition set belong to the host.
var (
	Meter    = &UnitDef{Name: "m", Base: Dimension{1, 0, 0, 0, 0, 0, 0}, Scale: 1, Prefixed: true}
	Gram     = &UnitDef{Name: "g", Base: Dimension{0, 1, 0, 0, 0, 0, 0}, Scale: 1e-3, Prefixed: true}
	Second   = &UnitDef{Name: "s", Base: Dimension{0, 0, 1, 0, 0, 0, 0}, Scale: 1, Prefixed: true}
	Ampere   = &UnitDef{Name: "A", Base: Dimension{0, 0, 0, 1, 0, 0, 0}, Scale: 1, Prefixed: true}
	Kelvin   = &UnitDef{Name: "K", Base: Dimension{0, 0, 0, 0, 1, 0, 0}, Scale: 1, Prefixed: true}
	Mole     = &UnitDef{Name: "mol", Base: Dimension{0, 0, 0, 0, 0, 1, 0}, Scale: 1, Prefixed: true}
	Candela  = &UnitDef{Name: "cd", Base: Dimension{0, 0, 0, 0, 0, 0, 1}, Scale: 1, Prefixed: true}
	Newton   = &UnitDef{Name: "N", Base: Dimension{1, 1, -2, 0, 0, 0, 0}, Scale: 1, Prefixed: true}
	Joule    = &UnitDef{Name: "J", Base: Dimension{2, 1, -2, 0, 0, 0, 0}, Scale: 1, Prefixed: true}
	Watt     = &UnitDef{Name: "W", Base: Dimension{2, 1, -3, 0, 0, 0, 0}, Scale: 1, Prefixed: true}
	Hertz    = &UnitDef{Name: "Hz", Base: Dimension{0, 0, -1, 0, 0, 0, 0}, Scale: 1, Prefixed: true}
	Inch     = &UnitDef{Name: "inch", Base: Dimension{1, 0, 0, 0, 0, 0, 0}, Scale: 0.0254}
	Minute   = &UnitDef{Name: "min", Base: Dimension{0, 0, 1, 0, 0, 0, 0}, Scale: 60}
	Hour     = &UnitDef{Name: "hour", Base: Dimension{0, 0, 1, 0, 0, 0, 0}, Scale: 3600}
	unitDefs = map[string]*UnitDef{}
)

func init() {
	for _, d := range []*UnitDef{Meter, Gram, Second, Ampere, Kelvin, Mole, Candela, Newton, Joule, Watt, Hertz, Inch, Minute, Hour} {
		unitDefs[d.Name] = d
	}
}

// LookupUnit resolves a unit name such as "cm" or "inch" into its definition
// and prefix. Exact names win over prefixed readings.
func LookupUnit(name string) (*UnitDef, Prefix, error) {
	if d, ok := unitDefs[name]; ok {
		return d, NoPrefix, nil
	}
	// Longest prefix first so "da" beats "d".
	for _, n := range []int{2, 1} {
		if len(name) <= n {
			continue
		}
		p, ok := prefixes[name[:n]]
		if !ok {
			continue
		}
		if d, ok := unitDefs[strings.TrimPrefix(name, p.Name)]; ok && d.Prefixed {
			return d, p, nil
		}
	}
	return nil, Prefix{}, valueErrorf("LookupUnit("+name+")", ErrUnknownUnit)
}
