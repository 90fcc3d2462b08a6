package geom

// Mathematical constants, as untyped float constants so that they may
// be used with either float kind.
const (
	E         = 2.718281828459045235360287471352662497
	Pi        = 3.141592653589793238462643383279502884
	HalfPi    = Pi / 2
	ThirdPi   = Pi / 3
	QuarterPi = Pi / 4
	TwoPi     = Pi * 2
	Tau       = TwoPi

	// Degree converts degrees to radians when multiplied; Radian the
	// reverse.
	Degree = Pi / 180
	Radian = 180 / Pi
)
