// Package notify tells the organisation about new contact form messages.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ahpc/backend/internal/model"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Notifier is called after a contact message has been stored.
// Implementations log failures instead of returning them.
type Notifier interface {
	ContactReceived(ctx context.Context, msg *model.ContactMessage)
}

// LogNotifier only writes a log line.
type LogNotifier struct{}

func (LogNotifier) ContactReceived(_ context.Context, msg *model.ContactMessage) {
	slog.Info("contact message received", "id", msg.ID, "email", msg.Email, "subject", msg.Subject)
}

var (
	host     = "https://api.sendgrid.com"
	endpoint = "/v3/mail/send"
)

// SendGridNotifier mails each new message to the organisation inbox.
type SendGridNotifier struct {
	key        string
	from       *sgmail.Email
	to         *sgmail.Email
	subjPrefix string
	// send is swapped out in tests
	send func(req rest.Request) (*rest.Response, error)
}

var _ Notifier = (*SendGridNotifier)(nil)

func NewSendGridNotifier(apiKey, appName, fromEmail, toEmail string) *SendGridNotifier {
	return &SendGridNotifier{
		key:        apiKey,
		from:       sgmail.NewEmail(appName, fromEmail),
		to:         sgmail.NewEmail(appName, toEmail),
		subjPrefix: "[" + appName + "] ",
		send:       sendgrid.API,
	}
}

// New returns a SendGridNotifier when both the API key and the inbox address
// are set, a LogNotifier otherwise.
func New(apiKey, appName, fromEmail, toEmail string) Notifier {
	if apiKey == "" || toEmail == "" {
		return LogNotifier{}
	}
	return NewSendGridNotifier(apiKey, appName, fromEmail, toEmail)
}

func (n *SendGridNotifier) prepare(msg *model.ContactMessage) *sgmail.SGMailV3 {
	subject := msg.Subject
	if subject == "" {
		subject = "New contact message"
	}

	p := sgmail.NewPersonalization()
	p.Subject = n.subjPrefix + subject
	p.AddTos(n.to)

	m := sgmail.NewV3Mail()
	m.SetFrom(n.from)
	m.SetReplyTo(sgmail.NewEmail(msg.Name, msg.Email))
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", fmt.Sprintf(
		"From: %s <%s>\nReceived: %s\n\n%s",
		msg.Name, msg.Email, msg.CreatedAt.Format("2006-01-02 15:04 MST"), msg.Message,
	)))
	return m
}

func (n *SendGridNotifier) ContactReceived(_ context.Context, msg *model.ContactMessage) {
	req := sendgrid.GetRequest(n.key, endpoint, host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(n.prepare(msg))

	res, err := n.send(req)
	if err != nil {
		slog.Error("sending contact notification", "error", err, "id", msg.ID)
		return
	}
	if res.StatusCode >= http.StatusBadRequest {
		slog.Error("sending contact notification", "status", res.StatusCode, "body", res.Body, "id", msg.ID)
	}
}
