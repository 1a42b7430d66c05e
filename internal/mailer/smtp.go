package mailer

import (
	"bytes"
	"fmt"
	"net/http"
	"text/template"
	"time"

	mail "gopkg.in/mail.v2"
)

// SMTPClient delivers transactional mail (order notifications) over plain
// SMTP. Delivery is best-effort; callers run it off the request path.
type SMTPClient struct {
	dialer *mail.Dialer
	from   string
}

func NewSMTPClient(host string, port int, username, password, from string) (*SMTPClient, error) {
	if host == "" || from == "" {
		return nil, fmt.Errorf("smtp host and from address are required")
	}
	return &SMTPClient{
		dialer: mail.NewDialer(host, port, username, password),
		from:   from,
	}, nil
}

func (c *SMTPClient) Send(templateFile, username, email string, data any) (int, error) {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return -1, fmt.Errorf("parse template: %w", err)
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return -1, fmt.Errorf("render subject: %w", err)
	}
	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		return -1, fmt.Errorf("render body: %w", err)
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(c.from, FromName))
	msg.SetAddressHeader("To", email, username)
	msg.SetHeader("Subject", subject.String())
	msg.SetBody("text/html", body.String())

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if lastErr = c.dialer.DialAndSend(msg); lastErr == nil {
			return http.StatusOK, nil
		}
		time.Sleep(time.Second * time.Duration(i+1))
	}
	return -1, fmt.Errorf("send after %d attempts: %w", maxRetries, lastErr)
}
