// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package platform buckets platform names into semantic categories and
// assigns each platform a reliability score for the confidence scorer.
// Classification is keyword-substring membership against fixed tables; it is
// total and deterministic.
package platform

import (
	"strings"

	"github.com/pdiddy/identity-engine/pkg/types"
)

// categoryKeywords maps lowercase platform-name substrings to categories.
// First matching bucket wins; order below is fixed.
var categoryKeywords = []struct {
	category types.Category
	keywords []string
}{
	{types.CategoryProfessional, []string{
		"github", "gitlab", "bitbucket", "stackoverflow", "stack overflow",
		"npm", "pypi", "docker", "kaggle", "hackerrank", "leetcode",
	}},
	{types.CategoryMedia, []string{
		"youtube", "vimeo", "spotify", "soundcloud", "twitch", "flickr",
		"500px", "dailymotion", "bandcamp", "mixcloud",
	}},
	{types.CategoryGaming, []string{
		"steam", "xbox", "playstation", "discord", "roblox", "minecraft",
		"epicgames", "battle.net", "chess.com", "lichess",
	}},
	{types.CategoryForum, []string{
		"reddit", "quora", "medium", "hackernews", "hacker news", "habr",
		"substack", "dev.to", "devto", "4chan", "stackexchange",
	}},
	{types.CategoryEcommerce, []string{
		"ebay", "etsy", "amazon", "aliexpress", "shopify", "depop",
		"poshmark", "vinted",
	}},
	{types.CategoryMessaging, []string{
		"telegram", "whatsapp", "signal", "kik", "viber", "wechat",
		"skype", "snapchat", "line",
	}},
	{types.CategorySocial, []string{
		"facebook", "twitter", "x.com", "instagram", "linkedin", "tiktok",
		"pinterest", "tumblr", "mastodon", "bluesky", "threads", "vk",
		"vkontakte", "weibo", "myspace", "flipboard",
	}},
}

// Categorize maps a platform name to its semantic category. Unknown
// platforms fall back to CategoryOther.
func Categorize(platform string) types.Category {
	name := strings.ToLower(strings.TrimSpace(platform))
	if name == "" {
		return types.CategoryOther
	}
	for _, bucket := range categoryKeywords {
		for _, kw := range bucket.keywords {
			if strings.Contains(name, kw) {
				return bucket.category
			}
		}
	}
	return types.CategoryOther
}

// reliabilityTable maps lowercase platform-name substrings to a 0-100
// reliability score. Platforms with strong identity practices (real-name
// policies, account verification) score higher than throwaway-friendly ones.
var reliabilityTable = []struct {
	keyword string
	score   int
}{
	{"linkedin", 95},
	{"github", 90},
	{"stackoverflow", 90},
	{"stack overflow", 90},
	{"gitlab", 88},
	{"facebook", 85},
	{"instagram", 80},
	{"twitter", 80},
	{"x.com", 80},
	{"youtube", 80},
	{"spotify", 78},
	{"reddit", 75},
	{"pinterest", 72},
	{"tiktok", 70},
	{"medium", 70},
	{"twitch", 70},
	{"steam", 68},
	{"mastodon", 68},
	{"bluesky", 68},
	{"discord", 65},
	{"tumblr", 62},
	{"telegram", 60},
	{"snapchat", 60},
	{"kik", 50},
}

// defaultReliability is the score for platforms not in the table.
const defaultReliability = 50

// Reliability returns the platform reliability score used as a scoring
// signal. Lookup is by substring; unknown platforms get the default.
func Reliability(platform string) int {
	name := strings.ToLower(strings.TrimSpace(platform))
	if name == "" {
		return defaultReliability
	}
	for _, entry := range reliabilityTable {
		if strings.Contains(name, entry.keyword) {
			return entry.score
		}
	}
	return defaultReliability
}
