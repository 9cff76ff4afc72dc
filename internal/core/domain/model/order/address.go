package order

import (
	"errors"
	"strings"

	"meatdelivery/internal/pkg/errs"
)

const DefaultCountry = "India"

// DeliveryAddress is copied into the order; later edits to the customer's
// saved addresses do not affect it.
type DeliveryAddress struct {
	Street       string
	City         string
	State        string
	ZipCode      string
	Country      string
	Landmark     string
	Instructions string
}

// NewDeliveryAddress trims every field and defaults the country.
func NewDeliveryAddress(street, city, state, zipCode, country, landmark, instructions string) (DeliveryAddress, error) {
	a := DeliveryAddress{
		Street:       strings.TrimSpace(street),
		City:         strings.TrimSpace(city),
		State:        strings.TrimSpace(state),
		ZipCode:      strings.TrimSpace(zipCode),
		Country:      strings.TrimSpace(country),
		Landmark:     strings.TrimSpace(landmark),
		Instructions: strings.TrimSpace(instructions),
	}
	if a.Country == "" {
		a.Country = DefaultCountry
	}
	if err := a.Validate(); err != nil {
		return DeliveryAddress{}, err
	}
	return a, nil
}

func (a DeliveryAddress) Validate() error {
	var list []error
	for name, v := range map[string]string{
		"deliveryAddress.street":  a.Street,
		"deliveryAddress.city":    a.City,
		"deliveryAddress.state":   a.State,
		"deliveryAddress.zipCode": a.ZipCode,
	} {
		if v == "" {
			list = append(list, errs.NewValueIsRequiredError(name))
		}
	}
	return errors.Join(list...)
}

// Contact is how the courier reaches the customer.
type Contact struct {
	Phone          string
	AlternatePhone string
}

func NewContact(phone, alternatePhone string) (Contact, error) {
	c := Contact{Phone: strings.TrimSpace(phone), AlternatePhone: strings.TrimSpace(alternatePhone)}
	if err := c.Validate(); err != nil {
		return Contact{}, err
	}
	return c, nil
}

func (c Contact) Validate() error {
	if c.Phone == "" {
		return errs.NewValueIsRequiredError("contactInfo.phone")
	}
	return nil
}
