package application

import (
	"fmt"
	"html"
	"strings"

	"github.com/kavyapatel/portfolio/internal/domain/model"
)

// submissionTimeLayout renders a human-readable submission time in the
// email bodies, e.g. "August 28, 2026 at 3:04 PM".
const submissionTimeLayout = "January 2, 2006 at 3:04 PM"

// ownerNotification builds the email sent to the site owner for a new contact
// submission. Reply-to is set to the submitter so the owner can respond
// directly from their mail client.
func ownerNotification(c model.Contact, from, ownerEmail, siteName string) model.OutboundEmail {
	subject := c.Subject
	if subject == "" {
		subject = "Message from Portfolio"
	}
	submittedAt := c.CreatedAt.Format(submissionTimeLayout)

	var htmlBody strings.Builder
	htmlBody.WriteString(`<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f5f5f5; }
  .container { max-width: 600px; margin: 0 auto; background: white; border-radius: 10px; overflow: hidden; }
  .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; text-align: center; }
  .content { padding: 30px; }
  .field { margin-bottom: 20px; }
  .field-label { font-weight: bold; color: #333; margin-bottom: 5px; }
  .field-value { background: #f8f9fa; padding: 15px; border-radius: 5px; border-left: 4px solid #667eea; }
  .footer { background: #f8f9fa; padding: 20px; text-align: center; color: #666; font-size: 14px; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>New Contact Form Submission</h1>
    <p>Someone reached out through your portfolio website!</p>
  </div>
  <div class="content">
`)
	writeField := func(label, value string) {
		fmt.Fprintf(&htmlBody, `    <div class="field"><div class="field-label">%s</div><div class="field-value">%s</div></div>
`, label, html.EscapeString(value))
	}
	writeField("Name:", c.Name)
	writeField("Email:", c.Email)
	writeField("Subject:", subject)
	writeField("Message:", c.Message)
	fmt.Fprintf(&htmlBody, `  </div>
  <div class="footer">
    <p>Received on %s · Reference %s</p>
    <p>This email was sent from your portfolio contact form at %s</p>
  </div>
</div>
</body>
</html>
`, html.EscapeString(submittedAt), html.EscapeString(c.Reference), html.EscapeString(siteName))

	text := fmt.Sprintf(`New Contact Form Submission - %s

Name: %s
Email: %s
Subject: %s

Message:
%s

Received on: %s
Reference: %s
Sent from: Portfolio Contact Form
`, siteName, c.Name, c.Email, subject, c.Message, submittedAt, c.Reference)

	return model.OutboundEmail{
		From:    from,
		To:      []string{ownerEmail},
		ReplyTo: c.Email,
		Subject: "New Contact: " + subject,
		HTML:    htmlBody.String(),
		Text:    text,
	}
}

// autoReply builds the acknowledgment sent back to the submitter.
func autoReply(c model.Contact, from, siteName string) model.OutboundEmail {
	subject := c.Subject
	if subject == "" {
		subject = "No subject"
	}

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f5f5f5; }
  .container { max-width: 600px; margin: 0 auto; background: white; border-radius: 10px; overflow: hidden; }
  .header { background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 30px; text-align: center; }
  .content { padding: 30px; line-height: 1.6; }
  .footer { background: #f8f9fa; padding: 20px; text-align: center; color: #666; }
</style>
</head>
<body>
<div class="container">
  <div class="header"><h1>Thank You for Reaching Out!</h1></div>
  <div class="content">
    <p>Hi %s,</p>
    <p>Thank you for contacting me through my portfolio website! I've received your message and really appreciate you taking the time to reach out.</p>
    <p><strong>Your message details:</strong></p>
    <p><em>Subject: %s</em></p>
    <p>I'll review your message and get back to you as soon as possible, typically within 24-48 hours.</p>
    <p>Best regards,<br><strong>%s</strong></p>
  </div>
  <div class="footer"><p>This is an automated response from %s</p></div>
</div>
</body>
</html>
`, html.EscapeString(c.Name), html.EscapeString(subject), html.EscapeString(siteName), html.EscapeString(siteName))

	text := fmt.Sprintf(`Hi %s,

Thank you for contacting me through my portfolio website! I've received your message about %q and really appreciate you taking the time to reach out.

I'll review your message and get back to you as soon as possible, typically within 24-48 hours.

Best regards,
%s

---
This is an automated response from %s
`, c.Name, subject, siteName, siteName)

	return model.OutboundEmail{
		From:    from,
		To:      []string{c.Email},
		Subject: "Thank you for your message - " + siteName,
		HTML:    htmlBody,
		Text:    text,
	}
}
