package pubdev

import (
	"strings"

	"golang.org/x/net/html"
)

// pub.dev badge markup: each group element contains one tag-badge-main label
// ("Platform" or "SDK") followed by tag-badge-sub links holding the values.
const (
	classBadgeLabel = "tag-badge-main"
	classBadgeValue = "tag-badge-sub"

	labelPlatform = "Platform"
	labelSDK      = "SDK"
)

// ExtractPlatforms scans detail-page markup for the Platform badge group and
// returns its values. No recognizable structure yields an empty list, never
// an error; duplicates and document order are preserved.
func ExtractPlatforms(doc string) []string {
	return extractBadges(doc, labelPlatform)
}

// ExtractSDKs scans detail-page markup for the SDK badge group and returns
// its values. Semantics match [ExtractPlatforms].
func ExtractSDKs(doc string) []string {
	return extractBadges(doc, labelSDK)
}

func extractBadges(doc, label string) []string {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		// html.Parse is lenient with malformed markup; a parse error only
		// occurs on reader failure, which cannot happen for a string.
		return nil
	}

	var values []string
	for n := range root.Descendants() {
		if n.Type != html.ElementNode || !hasClass(n, classBadgeLabel) {
			continue
		}
		if strings.TrimSpace(nodeText(n)) != label {
			continue
		}
		// Values are the sub-badges sharing this label's group element.
		if n.Parent == nil {
			continue
		}
		for sub := range n.Parent.Descendants() {
			if sub.Type != html.ElementNode || !hasClass(sub, classBadgeValue) {
				continue
			}
			if v := strings.TrimSpace(nodeText(sub)); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	for d := range n.Descendants() {
		if d.Type == html.TextNode {
			b.WriteString(d.Data)
		}
	}
	return b.String()
}
