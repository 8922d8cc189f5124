package controllers

import (
	"fmt"
	"os"

	"github.com/go-gomail/gomail"
)

// SendOTPEmail mails a signup verification code to a doctor
func SendOTPEmail(otp, email string) error {
	// SMTP server configuration
	senderEmail := os.Getenv("Email")
	senderPassword := os.Getenv("Password")

	// Compose email message
	m := gomail.NewMessage()
	m.SetHeader("From", senderEmail)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "ResistTrack verification code")
	m.SetBody("text/plain", "Hey Your OTP is "+otp)

	// Dial to SMTP server and send email
	d := gomail.NewDialer("smtp.gmail.com", 587, senderEmail, senderPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}

	return nil
}
