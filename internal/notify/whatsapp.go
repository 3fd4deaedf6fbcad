// Package notify mengirim nota penjualan lewat gateway WhatsApp eksternal.
//
// Pengiriman best-effort: gagal kirim hanya dicatat di log, tidak pernah
// di-retry dan tidak membatalkan transaksi yang sudah tersimpan.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type sendMessageRequest struct {
	Number  string `json:"number"`
	Message string `json:"message"`
}

// Send mengirim satu pesan ke nomor WA tujuan. Gateway membalas 200 kalau
// sukses; selain itu dianggap gagal.
func (c *Client) Send(number, message string) error {
	if c.endpoint == "" {
		return fmt.Errorf("endpoint gateway WA belum dikonfigurasi")
	}
	if number == "" {
		return fmt.Errorf("nomor WA kosong")
	}

	payload, err := json.Marshal(sendMessageRequest{
		Number:  number,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("payload tidak bisa di-marshal: %v", err)
	}

	resp, err := c.http.Post(c.endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("request ke gateway WA gagal: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway WA membalas status %d", resp.StatusCode)
	}

	return nil
}
