package order

import (
	"errors"
	"strings"

	"bakery/internal/pkg/errs"
)

// DeliveryDetails identifies who ordered and where to deliver.
// All three fields are required when an order is placed.
type DeliveryDetails struct {
	name    string
	phone   string
	address string
}

// NewDeliveryDetails trims and validates the checkout form fields.
func NewDeliveryDetails(name, phone, address string) (DeliveryDetails, error) {
	d := DeliveryDetails{
		name:    strings.TrimSpace(name),
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
	}

	var errList []error
	if d.name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customer name"))
	}
	if d.phone == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customer phone"))
	}
	if d.address == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customer address"))
	}
	if err := errors.Join(errList...); err != nil {
		return DeliveryDetails{}, err
	}
	return d, nil
}

// RestoreDeliveryDetails rebuilds details read from storage. Rows written
// before the address became mandatory may have an empty address.
func RestoreDeliveryDetails(name, phone, address string) DeliveryDetails {
	return DeliveryDetails{name: name, phone: phone, address: address}
}

func (d DeliveryDetails) Name() string    { return d.name }
func (d DeliveryDetails) Phone() string   { return d.phone }
func (d DeliveryDetails) Address() string { return d.address }
