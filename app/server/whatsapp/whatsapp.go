package whatsapp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"webafan-portfolio/app/server/models"
)

// Client 通过 Wablas 接口发送 WhatsApp 通知。
// apiURL 为空时视为未配置，所有发送都直接跳过。
type Client struct {
	apiURL string
	token  string
	sender string
	hc     *http.Client
}

func New(apiURL, token, sender string) *Client {
	return &Client{
		apiURL: strings.TrimRight(apiURL, "/"),
		token:  token,
		sender: sender,
		hc:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *Client) Enabled() bool {
	return w.apiURL != ""
}

// SendContactFormMessage 把联系表单内容格式化后推送到配置的接收号码
func (w *Client) SendContactFormMessage(ctx context.Context, contact *models.Contact) error {
	return w.SendMessage(ctx, w.sender, formatContactMessage(contact))
}

func (w *Client) SendMessage(ctx context.Context, phone string, message string) error {
	if !w.Enabled() {
		return fmt.Errorf("whatsapp notifier is not configured")
	}

	form := url.Values{}
	form.Set("phone", phone)
	form.Set("message", message)
	form.Set("isGroup", "false")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.apiURL+"/api/send-message", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", w.token)

	resp, err := w.hc.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status from whatsapp api: %d", resp.StatusCode)
	}

	return nil
}

func formatContactMessage(contact *models.Contact) string {
	var b strings.Builder

	b.WriteString("*New Contact Form Submission*\n\n")
	b.WriteString(fmt.Sprintf("*Name:* %s\n", contact.Name))
	b.WriteString(fmt.Sprintf("*Email:* %s\n", contact.Email))
	if strings.TrimSpace(contact.PhoneNumber) != "" {
		b.WriteString(fmt.Sprintf("*Phone:* %s\n", contact.PhoneNumber))
	}
	b.WriteString(fmt.Sprintf("*Subject:* %s\n\n", contact.Subject))
	b.WriteString(fmt.Sprintf("*Message:*\n%s\n\n", contact.Message))
	b.WriteString(fmt.Sprintf("*Sent at:* %s", time.Now().Format("02/01/2006 15:04:05")))

	return b.String()
}
