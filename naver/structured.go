package naver

import (
	"regexp"
	"strings"

	"github.com/tnwlsdldkdlel/crawling"
)

// Ensure Parser implements crawling.SentenceParser at compile time.
var _ crawling.SentenceParser = Parser{}

// yarnBrands are Korean yarn shops commonly credited in knitting posts.
// A sentence mentioning one of these is treated as a yarn description.
var yarnBrands = []string{
	"라라뜨개",
	"솜솜뜨개",
	"니트러브",
	"앵콜스 뜨개실",
	"바늘이야기",
}

var (
	yarnLabelRe  = regexp.MustCompile(`(?i)(?:사용실|yarn|실)\s*[:：]\s*(.+)`)
	needleRe     = regexp.MustCompile(`(?i)(?:needle|바늘)\s*[:：]\s*([^:：]*?\d[\d.]*\s*mm)`)
	needleBareRe = regexp.MustCompile(`([가-힣\s]*\d[\d.]*\s*mm)`)
	bracketTagRe = regexp.MustCompile(`\[.*?\]`)
	parenRe      = regexp.MustCompile(`\(([^)]+)\)`)
	mmTailRe     = regexp.MustCompile(`\s*(?:needle|바늘)?\s*[:：]?\s*\d[\d.]*\s*mm.*$`)
)

// Parser derives structured yarn and needle fields from a selected
// sentence, following the conventions Korean knitting posts use to credit
// materials ("사용실 : 클라우드 (2합, 400g) 바늘 : 4.5mm").
type Parser struct{}

// Parse extracts yarn and needle descriptions from the sentence. Fields
// that cannot be derived are left empty.
func (Parser) Parse(sentence string) crawling.SentenceData {
	return crawling.SentenceData{
		Yarn:   parseYarn(sentence),
		Needle: parseNeedle(sentence),
	}
}

// parseYarn prefers a fragment mentioning a known yarn brand, falling back
// to a "yarn :" / "사용실 :" labeled value.
func parseYarn(sentence string) string {
	for _, brand := range yarnBrands {
		if !strings.Contains(sentence, brand) {
			continue
		}
		text := bracketTagRe.ReplaceAllString(sentence, "")
		// Yarn details often sit inside parentheses right after the shop name.
		if m := parenRe.FindStringSubmatch(text); m != nil {
			text = m[1]
		}
		if yarn := cleanYarn(text); yarn != "" {
			return yarn
		}
	}

	if m := yarnLabelRe.FindStringSubmatch(sentence); m != nil {
		if yarn := cleanYarn(m[1]); yarn != "" {
			return yarn
		}
	}
	return ""
}

// cleanYarn strips trailing needle sizing and surrounding noise from a
// yarn fragment. Single-character leftovers are discarded.
func cleanYarn(text string) string {
	text = mmTailRe.ReplaceAllString(text, "")
	text = strings.Trim(text, "/ ")
	text = strings.TrimSpace(text)
	if len([]rune(text)) <= 1 {
		return ""
	}
	return text
}

// parseNeedle prefers a "needle :" / "바늘 :" labeled value, falling back
// to the first bare size mention ("밤부 4mm").
func parseNeedle(sentence string) string {
	if m := needleRe.FindStringSubmatch(sentence); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := needleBareRe.FindStringSubmatch(sentence); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
