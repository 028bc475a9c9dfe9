package naver

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tnwlsdldkdlel/crawling"
)

const (
	searchBaseURL  = "https://search.naver.com/search.naver"
	blogHost       = "blog.naver.com"
	resultsPerPage = 10
)

// SearchURL builds the Naver blog-search URL for a keyword and 1-based
// result page.
func SearchURL(keyword string, page int) string {
	params := url.Values{}
	params.Set("where", "blog")
	params.Set("sm", "tab_jum")
	params.Set("query", keyword)
	if page > 1 {
		params.Set("start", strconv.Itoa((page-1)*resultsPerPage+1))
	}
	return searchBaseURL + "?" + params.Encode()
}

// CollectPostURLs extracts blog post URLs from a search results page.
// Relative links are resolved against the blog host, and duplicates are
// dropped while preserving result order.
func CollectPostURLs(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing search results: %w", err)
	}

	var urls []string
	seen := make(map[string]struct{})

	doc.Find(`a[href*="blog.naver.com"]`).Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		clean, ok := cleanPostURL(href)
		if !ok {
			return
		}
		if _, dup := seen[clean]; dup {
			return
		}
		seen[clean] = struct{}{}
		urls = append(urls, clean)
	})

	return urls, nil
}

// cleanPostURL normalizes a search-result href to an absolute post URL.
func cleanPostURL(href string) (string, bool) {
	if !strings.Contains(href, blogHost) {
		return "", false
	}
	if strings.HasPrefix(href, "http") {
		return href, true
	}
	if strings.HasPrefix(href, "/") {
		return "https://" + blogHost + href, true
	}
	return "", false
}

// Search discovers blog post URLs for a keyword by paging through Naver's
// blog search results.
type Search struct {
	Loader  crawling.DocumentLoader
	Limiter crawling.DomainLimiter
}

// Discover fetches up to pages result pages for the keyword and returns
// the post URLs found, de-duplicated across pages in discovery order.
func (s *Search) Discover(ctx context.Context, keyword string, pages int) ([]string, error) {
	if keyword == "" {
		return nil, crawling.Errorf(crawling.EINVALID, "search keyword required")
	}
	if pages <= 0 {
		pages = 1
	}

	var urls []string
	seen := make(map[string]struct{})

	for page := 1; page <= pages; page++ {
		searchURL := SearchURL(keyword, page)

		if s.Limiter != nil {
			if u, err := url.Parse(searchURL); err == nil {
				if err := s.Limiter.Wait(ctx, u.Host); err != nil {
					return urls, err
				}
			}
		}

		html, err := s.Loader.Fetch(ctx, searchURL)
		if err != nil {
			return urls, fmt.Errorf("fetching search page %d: %w", page, err)
		}

		pageURLs, err := CollectPostURLs(html)
		if err != nil {
			return urls, err
		}
		for _, u := range pageURLs {
			if _, dup := seen[u]; dup {
				continue
			}
			seen[u] = struct{}{}
			urls = append(urls, u)
		}
	}

	return urls, nil
}
