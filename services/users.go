package services

import (
	"context"

	"matka/database"
	"matka/helpers"
	"matka/models"
)

// IN-clause queries are bounded by the storage layer.
const userLookupChunkSize = 30

type UserInfo struct {
	Username    string `json:"username"`
	Mobile      string `json:"mobile"`
	DeviceToken string `json:"-"`
}

// FetchUserInfo resolves profile fields for a set of user IDs, chunking
// the lookups. Unknown IDs are simply absent from the result.
func FetchUserInfo(ctx context.Context, uids []string) (map[string]UserInfo, error) {
	out := make(map[string]UserInfo, len(uids))
	if len(uids) == 0 {
		return out, nil
	}

	for _, chunk := range helpers.Chunk(uids, userLookupChunkSize) {
		var users []models.User
		if err := database.DB.WithContext(ctx).Where("uid IN ?", chunk).Find(&users).Error; err != nil {
			return out, err
		}
		for _, u := range users {
			if u.UID == "" {
				continue
			}
			out[u.UID] = UserInfo{
				Username:    u.Username,
				Mobile:      u.Phone,
				DeviceToken: u.DeviceToken,
			}
		}
	}
	return out, nil
}
