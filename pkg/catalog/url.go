package catalog

import (
	"My-Supps-Backend/domain"
	"regexp"
)

var iherbProductPattern = regexp.MustCompile(`iherb\.com/pr/.*?/(\w+-\d+)`)

// ParseIHerbID extracts the product code from an iHerb product page URL such
// as https://www.iherb.com/pr/now-foods-vitamin-d-3/NOW-00733.
func ParseIHerbID(url string) (string, error) {
	match := iherbProductPattern.FindStringSubmatch(url)
	if match == nil {
		return "", domain.ErrInvalidProductURL
	}
	return match[1], nil
}
