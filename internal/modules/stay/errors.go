package stay

const (
	msgSubmitted        = "Thank you! Your booking request has been received. We will confirm availability by email shortly."
	msgFixFields        = "Please correct the highlighted fields"
	msgSubmissionFailed = "We could not submit your booking right now. Please try again or contact us directly."

	fieldCheckIn  = "check_in"
	fieldCheckOut = "check_out"
)
