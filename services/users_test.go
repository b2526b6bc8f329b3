package services

import (
	"context"
	"fmt"
	"testing"

	"matka/models"
)

func TestFetchUserInfo(t *testing.T) {
	db := setupTestDB(t)

	// More users than one lookup chunk holds.
	const total = userLookupChunkSize + 5
	uids := make([]string, 0, total)
	for i := 0; i < total; i++ {
		uid := fmt.Sprintf("uid-%03d", i)
		uids = append(uids, uid)
		if err := db.Create(&models.User{
			UID:      uid,
			Username: fmt.Sprintf("user%03d", i),
			Phone:    fmt.Sprintf("9%09d", i),
		}).Error; err != nil {
			t.Fatal(err)
		}
	}
	uids = append(uids, "unknown-uid")

	info, err := FetchUserInfo(context.Background(), uids)
	if err != nil {
		t.Fatal(err)
	}
	if len(info) != total {
		t.Errorf("resolved %d users, want %d", len(info), total)
	}
	if got := info["uid-007"].Username; got != "user007" {
		t.Errorf("uid-007 = %q", got)
	}
	if _, ok := info["unknown-uid"]; ok {
		t.Error("unknown uid resolved")
	}
}

func TestFetchUserInfoEmpty(t *testing.T) {
	setupTestDB(t)
	info, err := FetchUserInfo(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(info) != 0 {
		t.Errorf("got %v, want empty", info)
	}
}
