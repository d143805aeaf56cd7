package client

import (
	"net/url"
	"sort"
	"strings"
)

// encodeComponent percent-encodes a single path or query component.
// url.QueryEscape writes spaces as '+', which is only valid inside a
// form body; rewrite to %20 so the same encoding works in paths.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// BuildURL combines a base endpoint, a path template with {name}
// placeholders, and parameter maps into a final URL.
//
// One trailing '/' on the endpoint is dropped. Each {key} present in
// pathParams is replaced with the percent-encoded value; a placeholder
// with no matching entry is left as literal {key} text — callers are
// expected to supply every parameter their template names. Query
// parameters are appended after '?', or after '&' when the template
// already embeds a query string, each name and value encoded
// independently and joined with '&'. Nil or empty maps contribute
// nothing. Pure function, deterministic for a given input.
func BuildURL(endpoint, pathTemplate string, queryParams, pathParams map[string]string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")

	path := pathTemplate
	for key, value := range pathParams {
		path = strings.ReplaceAll(path, "{"+key+"}", encodeComponent(value))
	}

	if len(queryParams) == 0 {
		return endpoint + path
	}

	keys := make([]string, 0, len(queryParams))
	for k := range queryParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, encodeComponent(k)+"="+encodeComponent(queryParams[k]))
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return endpoint + path + sep + strings.Join(pairs, "&")
}
