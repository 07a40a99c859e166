package email

const (
	subjectLeadConfirmation = "Thank you for your submission!"
	subjectLeadAlert        = "New lead submitted"
)
