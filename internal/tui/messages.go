package tui

import "github.com/MKhiriev/go-laundry/models"

// Page names registered in [RootModel].
const (
	pageHome   = "home"
	pageSignUp = "signup"
)

// NavigateTo asks [RootModel] to switch to Page. A non-nil Payload is
// delivered to the new page as the next message instead of calling Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// SignUpSuccessNotice is delivered to the home page after a successful sign-up.
type SignUpSuccessNotice struct {
	Customer models.Customer
}

type copiedMsg struct {
	text string
}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
