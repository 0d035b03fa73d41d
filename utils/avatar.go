package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL derives a gravatar image URL from an email address so every
// registered user starts with an avatar.
func GravatarURL(email string) string {
	hash := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", hash)
}
