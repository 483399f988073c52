package domain

import "errors"

// Validation failures the caller can recover from. The HTTP layer maps
// them to 4xx responses; none of them is a server fault.
var (
	ErrInvalidPlan               = errors.New("invalid rental plan")
	ErrDriverNotFound            = errors.New("delivery driver not found")
	ErrMotoNotFound              = errors.New("motorcycle not found")
	ErrIneligibleLicense         = errors.New("driver must hold a category A or A+B license")
	ErrRentalNotFound            = errors.New("rental not found")
	ErrAlreadySettled            = errors.New("return date has already been informed for this rental")
	ErrNotYetSettled             = errors.New("rental has no informed return date yet")
	ErrMissingExpectedReturnDate = errors.New("rental has no expected return date")
	ErrReturnBeforeStart         = errors.New("return date is before the rental start date")
	ErrInvalidDriver             = errors.New("invalid driver registration")
	ErrDuplicateLicensePlate     = errors.New("a motorcycle with the same license plate already exists")
	ErrDuplicateCNPJ             = errors.New("a driver with the same CNPJ already exists")
	ErrDuplicateCNH              = errors.New("a driver with the same CNH already exists")
)
