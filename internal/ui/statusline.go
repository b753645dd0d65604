package ui

import "fmt"

// StatusLine summarizes a completed key write without revealing the key.
func StatusLine(path, fingerprint string, replaced bool) string {
	action := "wrote"
	if replaced {
		action = "rotated"
	}
	return fmt.Sprintf("jwtkey: %s jwt.key in %s (fingerprint %s)", action, path, fingerprint)
}

// RevealLine prints the key itself; only used on explicit request.
func RevealLine(key string) string {
	return fmt.Sprintf("Generated JWT key: %s", key)
}

// VerifyLine summarizes a successful verification.
func VerifyLine(path, fingerprint string) string {
	return fmt.Sprintf("jwtkey: jwt.key in %s is valid (fingerprint %s)", path, fingerprint)
}
