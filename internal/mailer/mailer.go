package mailer

import "embed"

const (
	FromName                  = "GRLLA"
	maxRetries                = 3
	OrderNotificationTemplate = "order_notification.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, username, email string, data any) (int, error)
}
