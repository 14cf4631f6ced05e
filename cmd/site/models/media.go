package models

// MediaEntry is the API shape of one uploaded file and its tags
type MediaEntry struct {
	ID           string   `json:"id"`
	OriginalName string   `json:"original_name,omitempty"`
	Tags         []string `json:"tags"`
	URL          string   `json:"url"`
}

// SiteMedia is the unauthenticated projection the public site renders
// from: the active logo, the active hero image, and one image per
// service slug
type SiteMedia struct {
	LogoURL  string            `json:"logo_url,omitempty"`
	HeroURL  string            `json:"hero_url,omitempty"`
	Services map[string]string `json:"services"`
}
