package order

import (
	"errors"

	"ordercore/internal/pkg/errs"
	"ordercore/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created via
// the NewAddress constructor.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// defaultCountry is applied when the caller omits the country field.
const defaultCountry = "US"

// Address is the shipping destination of an order. Street, city, state, and
// zip are required; country defaults to "US"; apartment is optional.
// Address is an immutable value object.
type Address struct {
	street    string
	city      string
	state     string
	zip       string
	country   string
	apartment string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated shipping address. It fails with a
// ValidationError when street, city, state, or zip is empty.
func NewAddress(street, city, state, zip, country, apartment string) (Address, error) { //nolint:recvcheck //using for validation
	address := Address{
		apartment: apartment,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
		address.setState(state),
		address.setZip(zip),
	); err != nil {
		return Address{}, err
	}

	address.country = country
	if address.country == "" {
		address.country = defaultCountry
	}

	return address, nil
}

// Validate ensures the address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// State returns the state or region of the address.
func (a Address) State() string {
	return a.state
}

// Zip returns the postal code of the address.
func (a Address) Zip() string {
	return a.zip
}

// Country returns the country of the address.
func (a Address) Country() string {
	return a.country
}

// Apartment returns the optional unit designator; empty when not set.
func (a Address) Apartment() string {
	return a.apartment
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValidationError("shipping address street is required")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValidationError("shipping address city is required")
	}
	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	if state == "" {
		return errs.NewValidationError("shipping address state is required")
	}
	a.state = state
	return nil
}

func (a *Address) setZip(zip string) error {
	if zip == "" {
		return errs.NewValidationError("shipping address zip code is required")
	}
	a.zip = zip
	return nil
}
