package interact

import (
	"fmt"
	"net/url"

	"github.com/pkg/browser"
)

// SystemBrowser opens links with the desktop's default handler.
type SystemBrowser struct {
	// open overrides the launcher; nil uses browser.OpenURL.
	open func(url string) error
}

// Open validates url and hands it to the desktop's URL handler.
func (b SystemBrowser) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse link: %w", err)
	}
	switch u.Scheme {
	case "http", "https", "mailto":
	default:
		return fmt.Errorf("refusing to open %q: unsupported scheme %q", rawURL, u.Scheme)
	}

	open := b.open
	if open == nil {
		open = browser.OpenURL
	}
	if err := open(u.String()); err != nil {
		return fmt.Errorf("open %s: %w", u.Redacted(), err)
	}
	return nil
}
