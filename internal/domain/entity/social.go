package entity

// SocialNetwork identifies one of the supported social platforms.
type SocialNetwork string

const (
	SocialInstagram SocialNetwork = "instagram"
	SocialTikTok    SocialNetwork = "tiktok"
	SocialYouTube   SocialNetwork = "youtube"
	SocialTwitter   SocialNetwork = "twitter"
	SocialStrava    SocialNetwork = "strava"
	SocialLinkedIn  SocialNetwork = "linkedin"
	SocialGitHub    SocialNetwork = "github"
	SocialWhatsApp  SocialNetwork = "whatsapp"
	SocialFacebook  SocialNetwork = "facebook"
	SocialPinterest SocialNetwork = "pinterest"
	SocialTelegram  SocialNetwork = "telegram"
	SocialDiscord   SocialNetwork = "discord"
	SocialTwitch    SocialNetwork = "twitch"
	SocialKwai      SocialNetwork = "kwai"
	SocialVSCO      SocialNetwork = "vsco"
	SocialSnapchat  SocialNetwork = "snapchat"
	SocialOnlyFans  SocialNetwork = "onlyfans"
)

// SocialNetworks lists every supported network in display order.
var SocialNetworks = []SocialNetwork{
	SocialInstagram, SocialTikTok, SocialYouTube, SocialTwitter, SocialStrava,
	SocialLinkedIn, SocialGitHub, SocialWhatsApp, SocialFacebook, SocialPinterest,
	SocialTelegram, SocialDiscord, SocialTwitch, SocialKwai, SocialVSCO,
	SocialSnapchat, SocialOnlyFans,
}

// IsValid reports whether the network is one of the supported platforms.
func (n SocialNetwork) IsValid() bool {
	for _, known := range SocialNetworks {
		if n == known {
			return true
		}
	}

	return false
}

// SocialLink is a single network entry of a creator.
type SocialLink struct {
	URL     string `json:"url"`
	Visible bool   `json:"visible"`
}

// IsPublic reports whether the link may be rendered on the public profile.
func (l SocialLink) IsPublic() bool {
	return l.URL != "" && l.Visible
}

// SocialLinks maps each network to its link. Networks without an entry are empty.
type SocialLinks map[SocialNetwork]SocialLink

// FilledCount returns how many networks have a non-empty URL. Plan quotas count this.
func (s SocialLinks) FilledCount() int {
	count := 0
	for _, link := range s {
		if link.URL != "" {
			count++
		}
	}

	return count
}

// Public returns the links that may be rendered publicly, in display order.
func (s SocialLinks) Public() []PublicSocialLink {
	links := make([]PublicSocialLink, 0, len(s))
	for _, network := range SocialNetworks {
		link, ok := s[network]
		if !ok || !link.IsPublic() {
			continue
		}
		links = append(links, PublicSocialLink{Network: network, URL: link.URL})
	}

	return links
}

// PublicSocialLink is a social link as exposed on the public profile.
type PublicSocialLink struct {
	Network SocialNetwork `json:"network"`
	URL     string        `json:"url"`
}
