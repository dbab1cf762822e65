package redisrepo

import "fmt"

func LoginAttemptsKey(ip string) string {
	return fmt.Sprintf("login_attempts:%s", ip)
}
