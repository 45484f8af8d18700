package pitch

// builtinTemperaments is the fixed, 32-entry built-in temperament table.
// Index order matches the reference implementation's enumeration; index 8
// (EqualTemperamentIndex) is always 12-tone equal temperament.
//
// Only five entries (Equal, Pythagorean, Just, Meantone, Meantone 1/4-comma)
// have known ratio data in the retrieval corpus; every other entry falls
// back to the equal-temperament ratios, matching the one available partial
// port of this table. A later data source can replace individual rows
// without touching callers, since lookups are always by index or name.
var builtinTemperaments = [32]Temperament{
	0:  {Name: "Kirnberger I", Description: "Kirnberger I well temperament"},
	1:  {Name: "Kirnberger II", Description: "Kirnberger II well temperament"},
	2:  {Name: "Kirnberger III", Description: "Kirnberger III well temperament"},
	3:  {Name: "Werckmeister III", Description: "Werckmeister III well temperament"},
	4:  {Name: "Werckmeister IV", Description: "Werckmeister IV well temperament"},
	5:  {Name: "Werckmeister V", Description: "Werckmeister V well temperament"},
	6:  {Name: "Werckmeister VI", Description: "Werckmeister VI well temperament"},
	7:  {Name: "Bach/Lehman", Description: "Lehman's reconstruction of Bach's 1722 temperament"},
	8: {
		Name:        "Equal",
		Description: "12-tone equal temperament",
		Ratios: [Octave]float64{
			1.0, 1.059463, 1.122462, 1.189207, 1.259921, 1.334840,
			1.414214, 1.498307, 1.587401, 1.681793, 1.781797, 1.887749,
		},
	},
	9: {
		Name:        "Pythagorean",
		Description: "Pythagorean tuning built from stacked pure fifths",
		Ratios: [Octave]float64{
			1.0, 1.053498, 1.125000, 1.185185, 1.265625, 1.333333,
			1.404664, 1.500000, 1.580247, 1.687500, 1.777778, 1.898437,
		},
	},
	10: {
		Name:        "Just",
		Description: "5-limit just intonation",
		Ratios: [Octave]float64{
			1.0, 1.041667, 1.125000, 1.200000, 1.250000, 1.333333,
			1.406250, 1.500000, 1.600000, 1.666667, 1.800000, 1.875000,
		},
	},
	11: {
		Name:        "Meantone",
		Description: "Quarter-comma meantone",
		Ratios: [Octave]float64{
			1.0, 1.044907, 1.118034, 1.196279, 1.250000, 1.337481,
			1.397542, 1.495349, 1.562500, 1.671851, 1.788854, 1.869186,
		},
	},
	12: {
		Name:        "Meantone 1/4",
		Description: "Quarter-comma meantone",
		Ratios: [Octave]float64{
			1.0, 1.044907, 1.118034, 1.196279, 1.250000, 1.337481,
			1.397542, 1.495349, 1.562500, 1.671851, 1.788854, 1.869186,
		},
	},
	13: {Name: "Meantone 1/5", Description: "Fifth-comma meantone"},
	14: {Name: "Meantone 1/6", Description: "Sixth-comma meantone"},
	15: {Name: "Silbermann", Description: "Silbermann temperament"},
	16: {Name: "Salinas", Description: "Salinas temperament"},
	17: {Name: "Zarlino", Description: "Zarlino temperament"},
	18: {Name: "Rossi", Description: "Rossi temperament"},
	19: {Name: "Rossi 2", Description: "Rossi temperament, second variant"},
	20: {Name: "Vallotti", Description: "Vallotti well temperament"},
	21: {Name: "Young", Description: "Young's well temperament"},
	22: {Name: "Kellner", Description: "Kellner's reconstruction of Bach's temperament"},
	23: {Name: "Held", Description: "Held temperament"},
	24: {Name: "Neidhardt I", Description: "Neidhardt I well temperament"},
	25: {Name: "Neidhardt II", Description: "Neidhardt II well temperament"},
	26: {Name: "Neidhardt III", Description: "Neidhardt III well temperament"},
	27: {Name: "Bruder 1829", Description: "Bruder 1829 temperament"},
	28: {Name: "Barnes", Description: "Barnes temperament"},
	29: {Name: "Prelleur", Description: "Prelleur temperament"},
	30: {Name: "Chaumont", Description: "Chaumont temperament"},
	31: {Name: "Rameau", Description: "Rameau temperament"},
}

func init() {
	equal := builtinTemperaments[EqualTemperamentIndex].Ratios
	for i := range builtinTemperaments {
		if builtinTemperaments[i].Ratios == ([Octave]float64{}) {
			builtinTemperaments[i].Ratios = equal
		}
	}
}
