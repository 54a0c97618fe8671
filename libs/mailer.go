package libs

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"jasit-store/models"
	"jasit-store/utils"

	"gopkg.in/gomail.v2"
)

type Mailer interface {
	SendCheckoutConfirmation(ctx context.Context, c *models.CheckoutConfirmation) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, pass, from string) (*SMTPMailer, error) {
	if host == "" || user == "" || pass == "" {
		return nil, errors.New("SMTP configuration missing")
	}
	if from == "" {
		from = user
	}
	return &SMTPMailer{dialer: gomail.NewDialer(host, port, user, pass), from: from}, nil
}

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
    <h2 style="color: #3B82F6;">JASIT Consultan</h2>
    <p>Halo {{.Name}},</p>
    <p>Terima kasih, pesanan Anda telah kami terima.</p>
    <p><strong>Nomor referensi:</strong> {{.Reference}}</p>
    <table style="width: 100%; border-collapse: collapse;">
      {{range .Lines}}<tr><td>{{.Name}} x {{.Quantity}}</td><td style="text-align: right;">{{.Total}}</td></tr>
      {{end}}
      <tr><td>Subtotal</td><td style="text-align: right;">{{.Subtotal}}</td></tr>
      <tr><td>Pajak (11%)</td><td style="text-align: right;">{{.Tax}}</td></tr>
      <tr><td><strong>Total</strong></td><td style="text-align: right;"><strong>{{.GrandTotal}}</strong></td></tr>
    </table>
    <p style="color: #666; font-size: 12px;">Email ini dikirim otomatis. Mohon tidak membalas.</p>
  </div>
</body>
</html>`))

type mailLine struct {
	Name     string
	Quantity int
	Total    string
}

func (m *SMTPMailer) SendCheckoutConfirmation(_ context.Context, c *models.CheckoutConfirmation) error {
	lines := make([]mailLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, mailLine{Name: l.DisplayName, Quantity: l.Quantity, Total: utils.FormatRupiah(l.LineTotal())})
	}

	var body strings.Builder
	err := confirmationTemplate.Execute(&body, map[string]interface{}{
		"Name":       c.Contact.Name,
		"Reference":  c.Reference,
		"Lines":      lines,
		"Subtotal":   utils.FormatRupiah(c.Summary.Subtotal),
		"Tax":        utils.FormatRupiah(c.Summary.Tax),
		"GrandTotal": utils.FormatRupiah(c.Summary.GrandTotal),
	})
	if err != nil {
		return fmt.Errorf("render confirmation email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", c.Contact.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Konfirmasi Pesanan %s - JASIT Consultan", c.Reference))
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
