package ec2

// EN 1992-4 constants for fastener design in concrete.

const (
	// Partial factors (EN 1992-4 Table 4.1, recommended values)
	GammaMs      = 1.4  // steel failure, tension
	GammaMsShear = 1.25 // steel failure, shear
	GammaMc      = 1.5  // concrete failure modes

	// Concrete cone breakout factor k1 (EN 1992-4 Eq. 7.2)
	K1Cracked   = 7.7  // cracked concrete
	K1Uncracked = 11.0 // uncracked concrete

	// Steel shear reduction factor k6 (EN 1992-4 Eq. 7.34)
	K6Shear = 0.6

	// Interaction exponent for combined tension and shear,
	// steel and concrete failure (EN 1992-4 Eq. 7.54)
	InteractionExp = 1.5
)

// ScrN returns the characteristic spacing for concrete cone failure,
// 3 * hef (EN 1992-4 Section 7.2.1.4).
func ScrN(hef float64) float64 { return 3 * hef }

// CcrN returns the characteristic edge distance for concrete cone failure,
// 1.5 * hef.
func CcrN(hef float64) float64 { return 1.5 * hef }
