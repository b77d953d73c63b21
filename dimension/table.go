package dimension

// Derived unit symbols of the standard table.
const (
	Ohm     Symbol = "Ω"
	Volt    Symbol = "V"
	Farad   Symbol = "F"
	Siemens Symbol = "S"
	Henry   Symbol = "H"
	Watt    Symbol = "W"
	Weber   Symbol = "Wb"
	Joule   Symbol = "J"
	Newton  Symbol = "N"
	Tesla   Symbol = "T"
	Pascal  Symbol = "Pa"
	Coulomb Symbol = "C"
)

// baseDimensions lists the SI base dimensions in table order.
var baseDimensions = []Symbol{Second, Kilogram, Ampere, Metre, Kelvin, Mole, Candela}

// namedUnits is the read-only unit catalogue: base dimensions first, then
// the derived units in rule-table order.
var namedUnits = []NamedUnit{
	{Symbol: Second, Quantity: "Time"},
	{Symbol: Kilogram, Quantity: "Mass"},
	{Symbol: Ampere, Quantity: "Electric current"},
	{Symbol: Metre, Quantity: "Length"},
	{Symbol: Kelvin, Quantity: "Temperature"},
	{Symbol: Mole, Quantity: "Amount of substance"},
	{Symbol: Candela, Quantity: "Luminous intensity"},
	{Symbol: Ohm, Short: "O", Quantity: "Resistance"},
	{Symbol: Volt, Quantity: "Voltage"},
	{Symbol: Farad, Quantity: "Capacitance"},
	{Symbol: Siemens, Quantity: "Conductance"},
	{Symbol: Henry, Quantity: "Inductance"},
	{Symbol: Watt, Quantity: "Power"},
	{Symbol: Weber, Quantity: "Magnetic flux"},
	{Symbol: Joule, Quantity: "Energy"},
	{Symbol: Newton, Quantity: "Force"},
	{Symbol: Tesla, Quantity: "Magnetic flux density"},
	{Symbol: Pascal, Quantity: "Pressure"},
	{Symbol: Coulomb, Quantity: "Electric charge"},
}

// rule builds a reciprocal rule; every standard rule may fire both ways.
func rule(num, den []Symbol, result Symbol) Rule {
	return Rule{Numerators: num, Denominators: den, Result: result, Reciprocal: true}
}

// sym is shorthand for a symbol list literal.
func sym(s ...Symbol) []Symbol { return s }

// standardRules is the conversion table. Index positions are part of the
// public contract: NewProfile and YAML profile files refer to them.
//
//	 0 Ω   m·m·kg / s·s·s·A·A      8 N   m·kg / s·s
//	 1 V   m·m·kg / s·s·s·A        9 T   kg / s·s·A
//	 2 F   s·s·s·s·A·A / m·m·kg   10 Pa  kg / m·s·s
//	 3 S   s·s·s·A·A / m·m·kg     11 Ω   V / A
//	 4 H   m·m·kg / s·s·A·A       12 W   V·A
//	 5 W   m·m·kg / s·s·s         13 J   N·m
//	 6 Wb  m·m·kg / s·s·A         14 C   A·s
//	 7 J   m·m·kg / s·s
var standardRules = []Rule{
	rule(sym(Metre, Metre, Kilogram), sym(Second, Second, Second, Ampere, Ampere), Ohm),
	rule(sym(Metre, Metre, Kilogram), sym(Second, Second, Second, Ampere), Volt),
	rule(sym(Second, Second, Second, Second, Ampere, Ampere), sym(Metre, Metre, Kilogram), Farad),
	rule(sym(Second, Second, Second, Ampere, Ampere), sym(Metre, Metre, Kilogram), Siemens),
	rule(sym(Metre, Metre, Kilogram), sym(Second, Second, Ampere, Ampere), Henry),
	rule(sym(Metre, Metre, Kilogram), sym(Second, Second, Second), Watt),
	rule(sym(Metre, Metre, Kilogram), sym(Second, Second, Ampere), Weber),
	rule(sym(Metre, Metre, Kilogram), sym(Second, Second), Joule),
	rule(sym(Metre, Kilogram), sym(Second, Second), Newton),
	rule(sym(Kilogram), sym(Second, Second, Ampere), Tesla),
	rule(sym(Kilogram), sym(Metre, Second, Second), Pascal),
	rule(sym(Volt), sym(Ampere), Ohm),
	rule(sym(Volt, Ampere), nil, Watt),
	rule(sym(Newton, Metre), nil, Joule),
	rule(sym(Ampere, Second), nil, Coulomb),
}

// BaseDimensions returns the seven base dimension symbols in table order.
func BaseDimensions() []Symbol {
	return append([]Symbol(nil), baseDimensions...)
}

// Units returns a copy of the named unit catalogue.
func Units() []NamedUnit {
	return append([]NamedUnit(nil), namedUnits...)
}

// Rules returns a deep copy of the standard conversion table in index order.
func Rules() []Rule {
	out := make([]Rule, len(standardRules))
	for i, r := range standardRules {
		out[i] = r.clone()
	}

	return out
}
