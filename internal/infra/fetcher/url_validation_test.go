package fetcher

import (
	"errors"
	"net"
	"testing"

	"gamepulse/internal/usecase/ingest"
)

func TestValidateURL_RejectsBadSchemes(t *testing.T) {
	cases := []string{
		"ftp://example.com/file",
		"file:///etc/passwd",
		"javascript:alert(1)",
		"://broken",
		"https://",
	}

	for _, urlStr := range cases {
		if err := validateURL(urlStr, true); !errors.Is(err, ingest.ErrInvalidURL) {
			t.Errorf("validateURL(%q) = %v, want ErrInvalidURL", urlStr, err)
		}
	}
}

func TestValidateURL_RejectsPrivateHosts(t *testing.T) {
	// localhost resolves to loopback everywhere.
	err := validateURL("http://localhost/article", true)
	if !errors.Is(err, ingest.ErrPrivateIP) {
		t.Fatalf("validateURL(localhost) = %v, want ErrPrivateIP", err)
	}
}

func TestValidateURL_AllowsPrivateWhenDisabled(t *testing.T) {
	if err := validateURL("http://localhost/article", false); err != nil {
		t.Fatalf("validateURL with check disabled = %v, want nil", err)
	}
}

func TestIsPrivateIP(t *testing.T) {
	private := []string{"127.0.0.1", "10.1.2.3", "172.16.0.1", "192.168.1.1", "169.254.0.1", "::1", "fe80::1", "fc00::1"}
	for _, s := range private {
		if !isPrivateIP(net.ParseIP(s)) {
			t.Errorf("isPrivateIP(%s) = false, want true", s)
		}
	}

	public := []string{"8.8.8.8", "1.1.1.1", "2606:4700:4700::1111"}
	for _, s := range public {
		if isPrivateIP(net.ParseIP(s)) {
			t.Errorf("isPrivateIP(%s) = true, want false", s)
		}
	}
}
