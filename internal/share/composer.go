package share

import (
	"net/url"
	"strings"

	appErrors "github.com/rimedu/resultats-portal-api/pkg/errors"
)

// Platform identifies a share target.
type Platform string

const (
	PlatformFacebook Platform = "facebook"
	PlatformTwitter  Platform = "twitter"
	PlatformWhatsapp Platform = "whatsapp"
	PlatformTelegram Platform = "telegram"
	PlatformLinkedin Platform = "linkedin"
	PlatformCopy     Platform = "copy"
)

// Link kinds: a web intent the caller opens, or a raw URL the caller
// copies to the clipboard.
const (
	KindWebIntent = "web_intent"
	KindCopy      = "copy"
)

// Link is a composed share action for one platform.
type Link struct {
	Platform Platform `json:"platform"`
	Kind     string   `json:"kind"`
	URL      string   `json:"url"`
}

// Platforms lists every supported target, copy last.
func Platforms() []Platform {
	return []Platform{
		PlatformFacebook,
		PlatformTwitter,
		PlatformWhatsapp,
		PlatformTelegram,
		PlatformLinkedin,
		PlatformCopy,
	}
}

// Compose builds the platform-specific share action for a canonical share
// URL and accompanying text. Unknown platforms yield a validation error.
func Compose(platform Platform, shareURL, text string) (Link, error) {
	u := encode(shareURL)
	t := encode(text)

	switch platform {
	case PlatformFacebook:
		return webIntent(platform, "https://www.facebook.com/sharer/sharer.php?u="+u), nil
	case PlatformTwitter:
		return webIntent(platform, "https://twitter.com/intent/tweet?url="+u+"&text="+t), nil
	case PlatformWhatsapp:
		return webIntent(platform, "https://wa.me/?text="+t+"%20"+u), nil
	case PlatformTelegram:
		return webIntent(platform, "https://t.me/share/url?url="+u+"&text="+t), nil
	case PlatformLinkedin:
		return webIntent(platform, "https://www.linkedin.com/sharing/share-offsite/?url="+u), nil
	case PlatformCopy:
		return Link{Platform: PlatformCopy, Kind: KindCopy, URL: shareURL}, nil
	default:
		return Link{}, appErrors.Clone(appErrors.ErrValidation, "unsupported share platform: "+string(platform))
	}
}

// ComposeAll builds links for every supported platform.
func ComposeAll(shareURL, text string) []Link {
	platforms := Platforms()
	links := make([]Link, 0, len(platforms))
	for _, p := range platforms {
		link, err := Compose(p, shareURL, text)
		if err != nil {
			continue
		}
		links = append(links, link)
	}
	return links
}

// encode percent-encodes for a query value. url.QueryEscape emits '+' for
// spaces; the share intents expect %20.
func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func webIntent(platform Platform, u string) Link {
	return Link{Platform: platform, Kind: KindWebIntent, URL: u}
}
