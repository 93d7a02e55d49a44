package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kmufreight/leads-api/internal/entity"
)

type recordingSender struct {
	subject string
	body    string
	to      string
}

func (s *recordingSender) Send(subject, body, to string) error {
	s.subject = subject
	s.body = body
	s.to = to
	return nil
}

func TestNotifyAdminFieldOrder(t *testing.T) {
	sender := &recordingSender{}
	notifier := NewNotifier(sender, "admin@kmu-freight.com", "")

	err := notifier.NotifyAdmin(entity.Lead{
		Name:     "A",
		Company:  "B",
		Email:    "a@b.com",
		Interest: "x",
		Purpose:  "y",
		Consent:  true,
		Message:  "hello",
	})

	assert.NoError(t, err)
	assert.Equal(t, "admin@kmu-freight.com", sender.to)
	assert.Equal(t, "Neuer Warteliste/Lead – KMU-Freight", sender.subject)
	assert.Equal(t,
		"Name: A\nFirma: B\nE-Mail: a@b.com\nInteresse: x\nZweck: y\nEinwilligung: true\nNachricht: hello\n",
		sender.body,
	)
}

func TestNotifyAdminMissingMessagePlaceholder(t *testing.T) {
	sender := &recordingSender{}
	notifier := NewNotifier(sender, "admin@kmu-freight.com", "")

	err := notifier.NotifyAdmin(entity.Lead{Name: "A", Company: "B", Email: "a@b.com"})

	assert.NoError(t, err)
	assert.Contains(t, sender.body, "Nachricht: -\n")
}

func TestSendOptInLink(t *testing.T) {
	sender := &recordingSender{}
	notifier := NewNotifier(sender, "admin@kmu-freight.com", "https://kmu-freight.com")

	err := notifier.SendOptIn("a@b.com", "tok-abc")

	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", sender.to)
	assert.Equal(t, "Bitte bestätige deine Anmeldung – KMU-Freight", sender.subject)
	assert.Contains(t, sender.body, "https://kmu-freight.com/confirm?token=tok-abc")
}

func TestConfirmURLWithoutBaseIsRelative(t *testing.T) {
	notifier := NewNotifier(&recordingSender{}, "admin@kmu-freight.com", "")

	assert.Equal(t, "/confirm?token=tok-abc", notifier.ConfirmURL("tok-abc"))
}
