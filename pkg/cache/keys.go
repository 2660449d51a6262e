package cache

import "fmt"

// SessionStateKey namespaces a session-state key under its session id.
func SessionStateKey(sessionID, key string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, key)
}

