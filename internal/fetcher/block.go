package fetcher

import (
	"net/http"
	"strings"
)

// BlockType describes the kind of anti-bot block detected on a failed fetch.
type BlockType string

const (
	BlockNone       BlockType = ""
	BlockCloudflare BlockType = "cloudflare"
	BlockCaptcha    BlockType = "captcha"
)

// DetectBlock checks a non-2xx response for signs of anti-bot protection.
// Successful responses are never reported as blocked: directory pages embed
// captcha widgets on login forms.
func DetectBlock(resp *http.Response, body []byte) BlockType {
	if resp == nil || (resp.StatusCode >= 200 && resp.StatusCode <= 299) {
		return BlockNone
	}

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusServiceUnavailable {
		if resp.Header.Get("cf-ray") != "" || resp.Header.Get("cf-cache-status") != "" {
			return BlockCloudflare
		}
		if resp.Header.Get("server") == "cloudflare" {
			return BlockCloudflare
		}
	}

	lower := strings.ToLower(string(body))

	if strings.Contains(lower, "checking your browser") ||
		strings.Contains(lower, "cf-browser-verification") {
		return BlockCloudflare
	}

	if strings.Contains(lower, "captcha") {
		return BlockCaptcha
	}

	return BlockNone
}
