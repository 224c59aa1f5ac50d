package vehicle

// Vehicle is anything that reports its current speed.
type Vehicle interface {
	Speed() float64
}
