package mailer

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sudha-1290/Quiz-Master-V1/config"
	"gopkg.in/gomail.v2"
)

const fromAddress = "noreply@quizmaster.com"

// SendPasswordReset mails the reset link for a freshly issued token.
// Without SMTP_HOST configured the send is skipped, which keeps local
// development from needing a mail server.
func SendPasswordReset(to, token string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", config.Env.AppBaseURL, token)

	m := gomail.NewMessage()
	m.SetHeader("From", fromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Password Reset Request")
	m.SetBody("text/plain", fmt.Sprintf(`To reset your password, visit the following link:
%s

If you did not make this request then simply ignore this email.
`, link))

	d := gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD"))
	return d.DialAndSend(m)
}
