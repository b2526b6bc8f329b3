package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// Push delivery is fire-and-forget: a winner not getting a notification is
// an annoyance, a settlement blocked by the push gateway is an outage.

var pushClient = &http.Client{Timeout: 15 * time.Second}

type pushMessage struct {
	To           string `json:"to"`
	Notification struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	} `json:"notification"`
}

// SendPush delivers one notification to a device token through the FCM
// legacy HTTP endpoint. Errors are returned for logging only.
func SendPush(ctx context.Context, token, title, body string) error {
	serverKey := os.Getenv("FCM_SERVER_KEY")
	if serverKey == "" || token == "" {
		return nil
	}
	endpoint := os.Getenv("FCM_SEND_URL")
	if endpoint == "" {
		endpoint = "https://fcm.googleapis.com/fcm/send"
	}

	msg := pushMessage{To: token}
	msg.Notification.Title = title
	msg.Notification.Body = body

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+serverKey)

	resp, err := pushClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("push send failed with status %d: %s", resp.StatusCode, raw)
	}
	return nil
}

// NotifyWinners pushes a win notification to every credited user. Runs
// after the settlement commit, never before it.
func NotifyWinners(winners []WinningBid) {
	if os.Getenv("FCM_SERVER_KEY") == "" {
		return
	}

	uids := make([]string, 0, len(winners))
	seen := make(map[string]bool)
	for _, w := range winners {
		if !seen[w.UID] {
			seen[w.UID] = true
			uids = append(uids, w.UID)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	info, err := FetchUserInfo(ctx, uids)
	if err != nil {
		log.Printf("⚠️  winner notification lookup failed: %v", err)
		return
	}

	for _, w := range winners {
		token := info[w.UID].DeviceToken
		if token == "" {
			continue
		}
		body := fmt.Sprintf("Your %s bid won %.2f!", w.GameType, w.WinAmount)
		if err := SendPush(ctx, token, "Congratulations! 🎉", body); err != nil {
			log.Printf("⚠️  push to %s failed: %v", w.UID, err)
		}
	}
}
