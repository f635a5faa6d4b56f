package langfeat

import (
	"context"
	"fmt"

	"github.com/Fcakiroglu16/gofeatures/tour"
)

func init() {
	tour.MustRegister(tour.Routine{
		Name:    "accessor-methods",
		Summary: "Accessors: validated setters over an unexported backing field",
		Run:     runAccessors,
	})
}

// absoluteZeroC is the lowest physically valid Celsius reading.
const absoluteZeroC = -273.15

// defaultCelsius is reported until a reading has been recorded.
const defaultCelsius = 20.0

// Temperature stores a Celsius reading behind an unexported backing field.
// The setter validates; the getter substitutes a default until the first
// successful write. The zero value is ready to use.
type Temperature struct {
	celsius float64
	set     bool
}

// SetCelsius records a reading, rejecting physically impossible values.
func (t *Temperature) SetCelsius(c float64) error {
	if c < absoluteZeroC {
		return fmt.Errorf("temperature %.2f°C is below absolute zero", c)
	}
	t.celsius = c
	t.set = true
	return nil
}

// Celsius returns the recorded reading, or the room default before any write.
func (t Temperature) Celsius() float64 {
	if !t.set {
		return defaultCelsius
	}
	return t.celsius
}

// Fahrenheit derives the Fahrenheit view of the same backing field.
func (t Temperature) Fahrenheit() float64 {
	return t.Celsius()*9/5 + 32
}

func runAccessors(ctx context.Context, p *tour.Printer) error {
	var temp Temperature

	p.Step("the getter substitutes a default until a value is recorded")
	p.Value("Celsius()", temp.Celsius())

	p.Step("the setter guards the backing field with validation")
	if err := temp.SetCelsius(-400); err != nil {
		p.Caught(err)
	}
	p.Value("Celsius() after rejected write", temp.Celsius())

	p.Step("a valid write lands in the backing field")
	if err := temp.SetCelsius(36.6); err != nil {
		return err
	}
	p.Value("Celsius()", temp.Celsius())

	p.Step("derived accessors share the same backing field")
	p.Value("Fahrenheit()", temp.Fahrenheit())

	return nil
}
