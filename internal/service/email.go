package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host, port, username, password, from string) EmailService {
	p, _ := strconv.Atoi(port)
	return &emailService{
		host:     host,
		port:     p,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendOverdueReminder(ctx context.Context, email, username, bookTitle string, dueDate time.Time, accruedFine float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Overdue Book Reminder")

	body := fmt.Sprintf("Hello %s,\n\nThe book '%s' was due on %s and has not been returned.", username, bookTitle, dueDate.Format("January 2, 2006"))
	if accruedFine > 0 {
		body += fmt.Sprintf("\n\nYour current late fine is $%.2f and will continue to grow until the book is returned.", accruedFine)
	}
	body += "\n\nPlease return the book at your earliest convenience.\n\nBest regards,\nThe Library Team"
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send overdue reminder: %w", err)
	}

	return nil
}
