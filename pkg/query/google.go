package query

import (
	"net/url"
	"strconv"
)

const googleSearchBase = "https://www.google.com/search"

// SearchURL builds the Google search URL for an executed dork query.
func SearchURL(executedQuery string) string {
	params := url.Values{}
	params.Set("q", executedQuery)
	return googleSearchBase + "?" + params.Encode()
}

// SearchURLWithPage appends result paging (10 results per page, zero-based
// page index) for executors that walk beyond the first page.
func SearchURLWithPage(executedQuery string, page int) string {
	if page <= 0 {
		return SearchURL(executedQuery)
	}
	params := url.Values{}
	params.Set("q", executedQuery)
	params.Set("start", strconv.Itoa(page*10))
	return googleSearchBase + "?" + params.Encode()
}
