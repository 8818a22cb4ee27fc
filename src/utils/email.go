package utils

import (
	"bloodbank/src/models"
	"fmt"
	"strings"
)

const acceptanceEmailSubject = "Your Blood Request Has Been Accepted"

// RenderAcceptanceEmail builds the notification body for an accepted request.
// The QR artifact is referenced by content id and must be embedded in the
// message under the same name.
func RenderAcceptanceEmail(user *models.User, request *models.BloodRequest, qrCid string) (subject string, body string) {
	urgent := "No"
	if request.Urgent {
		urgent = "Yes"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "<h3>Dear %s,</h3>", user.Username)
	b.WriteString("<p>Your blood request has been accepted. Please find the details below:</p>")
	b.WriteString("<ul>")
	fmt.Fprintf(&b, "<li><strong>Blood Type:</strong> %s</li>", request.BloodTypeID)
	fmt.Fprintf(&b, "<li><strong>Quantity:</strong> %d units</li>", request.Quantity)
	fmt.Fprintf(&b, "<li><strong>Request Date:</strong> %s</li>", request.RequestDate.Format("Mon, 02 Jan 2006"))
	fmt.Fprintf(&b, "<li><strong>Required By:</strong> %s</li>", request.RequiredBy.Format("Mon, 02 Jan 2006"))
	fmt.Fprintf(&b, "<li><strong>Delivery Address:</strong> %s</li>", request.DeliveryAddress)
	fmt.Fprintf(&b, "<li><strong>Contact Number:</strong> %s</li>", request.ContactNumber)
	fmt.Fprintf(&b, "<li><strong>Reason for Request:</strong> %s</li>", request.ReasonForRequest)
	fmt.Fprintf(&b, "<li><strong>Hospital Name:</strong> %s</li>", request.HospitalName)
	fmt.Fprintf(&b, "<li><strong>Urgent:</strong> %s</li>", urgent)
	b.WriteString("</ul>")
	b.WriteString("<p>Please present the attached QR code to the delivery agent for verification:</p>")
	fmt.Fprintf(&b, `<img src="cid:%s" alt="QR Code" />`, qrCid)
	b.WriteString("<p>Best regards,<br>The Blood Bank Team</p>")
	return acceptanceEmailSubject, b.String()
}

// RenderOtpEmail builds the password-reset message.
func RenderOtpEmail(user *models.User, otp string) (subject string, body string) {
	var b strings.Builder
	fmt.Fprintf(&b, "<h3>Hey %s,</h3>", user.Username)
	b.WriteString("<p>Use the following OTP to complete your password reset. The OTP is valid for <strong>10 minutes</strong>. Do not share this code with anyone.</p>")
	fmt.Fprintf(&b, "<h1>%s</h1>", otp)
	b.WriteString("<p>Best regards,<br>The Blood Bank Team</p>")
	return "Your Password Reset OTP", b.String()
}
