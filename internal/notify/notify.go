package notify

import (
	"fmt"

	"studio-backend/internal/mailer"
	"studio-backend/internal/models"
)

// Notifier maps booking/application state changes to outbound emails.
// Every send goes through mailer.Dispatch: delivery failures are logged and
// never surface to the API caller.
type Notifier struct {
	Sender     mailer.Sender
	AdminEmail string
}

func New(sender mailer.Sender, adminEmail string) *Notifier {
	return &Notifier{Sender: sender, AdminEmail: adminEmail}
}

func hoursLine(b *models.Booking) string {
	if b.Hours <= 0 {
		return ""
	}
	return fmt.Sprintf(`<p><strong>Duration:</strong> %d hours</p>`, b.Hours)
}

// BookingCreated fires the requester acknowledgment and the admin alert.
// The two sends are independent; failure of one does not block the other.
func (n *Notifier) BookingCreated(b *models.Booking) {
	userHTML := fmt.Sprintf(`
	<div style="font-family: 'Manrope', sans-serif; padding: 40px; background: linear-gradient(135deg, #030305 0%%, #0a0a12 100%%); color: white; border-radius: 16px;">
		<h1 style="color: #00f0ff; margin-bottom: 24px;">Booking Enquiry Received!</h1>
		<p style="color: rgba(255,255,255,0.8); font-size: 16px;">Thank you for booking with Hogwarts Music Studio.</p>
		<div style="background: rgba(255,255,255,0.05); border: 1px solid rgba(255,255,255,0.1); border-radius: 12px; padding: 24px; margin: 24px 0;">
			<h3 style="color: #bc13fe; margin-bottom: 16px;">Booking Details</h3>
			<p><strong>Service:</strong> %s</p>
			<p><strong>Date:</strong> %s</p>
			<p><strong>Time:</strong> %s</p>
			%s
			<p><strong>Booking ID:</strong> %s</p>
		</div>
		<p style="color: rgba(255,255,255,0.6); font-size: 14px;">We'll contact you shortly to confirm your session.</p>
	</div>`,
		b.ServiceName, b.PreferredDate, b.PreferredTime, hoursLine(b), b.ID)
	mailer.Dispatch(n.Sender, b.Email, "Booking Received - "+b.ServiceName, userHTML)

	adminHTML := fmt.Sprintf(`
	<div style="font-family: 'Manrope', sans-serif; padding: 40px; background: #030305; color: white;">
		<h1 style="color: #00f0ff;">New Booking Received!</h1>
		<div style="background: rgba(255,255,255,0.05); border: 1px solid rgba(255,255,255,0.1); border-radius: 12px; padding: 24px; margin: 24px 0;">
			<p><strong>Client:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Phone:</strong> %s</p>
			<p><strong>Service:</strong> %s</p>
			<p><strong>Date:</strong> %s</p>
			<p><strong>Time:</strong> %s</p>
			%s
			<p><strong>Description:</strong> %s</p>
		</div>
	</div>`,
		b.FullName, b.Email, b.Phone, b.ServiceName, b.PreferredDate, b.PreferredTime, hoursLine(b), b.Description)
	mailer.Dispatch(n.Sender, n.AdminEmail, "New Booking - "+b.FullName, adminHTML)
}

// BookingStatusChanged notifies the requester according to the new status.
// Unknown status values notify nothing.
func (n *Notifier) BookingStatusChanged(b *models.Booking) {
	switch b.Status {
	case models.BookingConfirmed, models.BookingApproved:
		html := fmt.Sprintf(`
		<div style="font-family: 'Manrope', sans-serif; padding: 40px; background: #030305; color: white; border-radius: 16px;">
			<h1 style="color: #00f0ff;">Booking Confirmed!</h1>
			<p style="color: rgba(255,255,255,0.8);">Your session at Hogwarts Music Studio is confirmed.</p>
			<div style="background: rgba(255,255,255,0.05); border: 1px solid rgba(255,255,255,0.1); border-radius: 12px; padding: 24px; margin: 24px 0;">
				<p><strong>Service:</strong> %s</p>
				<p><strong>Date:</strong> %s</p>
				<p><strong>Time:</strong> %s</p>
				%s
			</div>
			<p style="color: rgba(255,255,255,0.6); font-size: 14px;">See you at the studio!</p>
		</div>`,
			b.ServiceName, b.PreferredDate, b.PreferredTime, hoursLine(b))
		mailer.Dispatch(n.Sender, b.Email, "Booking Confirmed - "+b.ServiceName, html)

	case models.BookingCompleted:
		html := fmt.Sprintf(`
		<div style="font-family: 'Manrope', sans-serif; padding: 40px; background: #030305; color: white; border-radius: 16px;">
			<h1 style="color: #bc13fe;">Thank You!</h1>
			<p style="color: rgba(255,255,255,0.8);">Your %s session is complete. Thank you for recording with Hogwarts Music Studio.</p>
			<p style="color: rgba(255,255,255,0.6); font-size: 14px;">We'd love to work with you again.</p>
		</div>`,
			b.ServiceName)
		mailer.Dispatch(n.Sender, b.Email, "Session Completed - "+b.ServiceName, html)

	case models.BookingRejected, models.BookingCancelled:
		html := fmt.Sprintf(`
		<div style="font-family: 'Manrope', sans-serif; padding: 40px; background: #030305; color: white; border-radius: 16px;">
			<h1 style="color: #ff4d6d;">Booking Update</h1>
			<p style="color: rgba(255,255,255,0.8);">We're sorry, we couldn't accommodate your %s session on %s at %s.</p>
			<p style="color: rgba(255,255,255,0.8);">Please submit a new booking for another slot. We'd love to have you in.</p>
		</div>`,
			b.ServiceName, b.PreferredDate, b.PreferredTime)
		mailer.Dispatch(n.Sender, b.Email, "Booking Update - "+b.ServiceName, html)
	}
}

func (n *Notifier) ApplicationCreated(a *models.Application) {
	userHTML := fmt.Sprintf(`
	<div style="font-family: 'Manrope', sans-serif; padding: 40px; background: #030305; color: white; border-radius: 16px;">
		<h1 style="color: #00f0ff;">Application Received!</h1>
		<p style="color: rgba(255,255,255,0.8);">Thanks for applying for the <strong>%s</strong> position at Hogwarts Music Studio.</p>
		<p style="color: rgba(255,255,255,0.6); font-size: 14px;">We review every application and will get back to you.</p>
	</div>`,
		a.Position)
	mailer.Dispatch(n.Sender, a.Email, "Application Received - "+a.Position, userHTML)

	adminHTML := fmt.Sprintf(`
	<div style="font-family: 'Manrope', sans-serif; padding: 40px; background: #030305; color: white;">
		<h1 style="color: #00f0ff;">New Job Application!</h1>
		<div style="background: rgba(255,255,255,0.05); border: 1px solid rgba(255,255,255,0.1); border-radius: 12px; padding: 24px; margin: 24px 0;">
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Phone:</strong> %s</p>
			<p><strong>Position:</strong> %s</p>
			<p><strong>Experience:</strong> %s</p>
			<p><strong>Portfolio:</strong> %s</p>
			<p><strong>Message:</strong> %s</p>
		</div>
	</div>`,
		a.FullName, a.Email, a.Phone, a.Position, a.Experience, a.PortfolioURL, a.Message)
	mailer.Dispatch(n.Sender, n.AdminEmail, "New Application - "+a.FullName, adminHTML)
}

func (n *Notifier) ApplicationStatusChanged(a *models.Application) {
	html := fmt.Sprintf(`
	<div style="font-family: 'Manrope', sans-serif; padding: 40px; background: #030305; color: white; border-radius: 16px;">
		<h1 style="color: #bc13fe;">Application Update</h1>
		<p style="color: rgba(255,255,255,0.8);">Your application for <strong>%s</strong> has been updated.</p>
		<p><strong>Status:</strong> %s</p>
	</div>`,
		a.Position, a.Status)
	mailer.Dispatch(n.Sender, a.Email, "Application Update - "+a.Position, html)
}
