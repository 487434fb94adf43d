package email

const (
	subjectNewOrderFmt       = "New Dumpster Order - %s"
	subjectOrderConfirmation = "We received your dumpster request"
)
