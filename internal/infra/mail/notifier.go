package mail

import (
	"fmt"
	"net/url"

	"github.com/kmufreight/leads-api/internal/entity"
)

// Notifier composes the two waitlist mails and hands them to the configured
// Sender. Admin address and public base URL are injected once at startup.
type Notifier struct {
	Sender     Sender
	AdminEmail string
	BaseURL    string
}

func NewNotifier(sender Sender, adminEmail, baseURL string) *Notifier {
	return &Notifier{
		Sender:     sender,
		AdminEmail: adminEmail,
		BaseURL:    baseURL,
	}
}

// NotifyAdmin mails a fixed-order summary of a new lead to the admin address.
func (n *Notifier) NotifyAdmin(lead entity.Lead) error {
	message := lead.Message
	if message == "" {
		message = "-"
	}

	subject := "Neuer Warteliste/Lead – KMU-Freight"
	body := fmt.Sprintf(
		"Name: %s\n"+
			"Firma: %s\n"+
			"E-Mail: %s\n"+
			"Interesse: %s\n"+
			"Zweck: %s\n"+
			"Einwilligung: %t\n"+
			"Nachricht: %s\n",
		lead.Name, lead.Company, lead.Email, lead.Interest, lead.Purpose, lead.Consent, message,
	)

	return n.Sender.Send(subject, body, n.AdminEmail)
}

// SendOptIn mails the double opt-in link to the submitter.
func (n *Notifier) SendOptIn(email, token string) error {
	subject := "Bitte bestätige deine Anmeldung – KMU-Freight"
	body := fmt.Sprintf(
		"Hallo,\n\n"+
			"bitte bestätige deine Anmeldung zur Warteliste, indem du auf den folgenden Link klickst:\n"+
			"%s\n\n"+
			"Wenn du diese Anfrage nicht gestellt hast, ignoriere diese Nachricht.\n\n"+
			"Viele Grüße\nKMU-Freight",
		n.ConfirmURL(token),
	)

	return n.Sender.Send(subject, body, email)
}

// ConfirmURL builds the link carried by the opt-in mail. Without a base URL
// it degrades to a relative path.
func (n *Notifier) ConfirmURL(token string) string {
	query := url.Values{"token": {token}}.Encode()
	if n.BaseURL == "" {
		return "/confirm?" + query
	}
	return n.BaseURL + "/confirm?" + query
}
