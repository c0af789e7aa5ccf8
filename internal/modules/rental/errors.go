package rental

import "errors"

// ErrCheckFailed means the store could not answer; the guest sees no result.
var ErrCheckFailed = errors.New("availability check failed")

const (
	msgAvailable        = "Good news! This vehicle is available for your dates."
	msgUnavailable      = "Sorry, this vehicle is already booked for some of those dates."
	msgSubmitted        = "Thank you! Your rental request has been received. Our team will contact you to confirm."
	msgFixFields        = "Please correct the highlighted fields"
	msgCheckFailed      = "We could not check availability right now. Please try again."
	msgSubmissionFailed = "We could not submit your rental request right now. Please try again or contact us directly."

	fieldVehicleType = "vehicle_type"
	fieldPickupDate  = "pickup_date"
	fieldReturnDate  = "return_date"
	fieldAddOns      = "add_ons"
)
