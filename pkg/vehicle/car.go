package vehicle

// Car holds a speed and nothing else.
// The zero value is a stationary car.
type Car struct {
	speed float64
}

// NewCar returns a stationary car.
func NewCar() *Car {
	return &Car{}
}

// Speed is in km/h
func (car *Car) Speed() float64 {
	return car.speed
}
