package assistant

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
)

const (
	wikiSearchURL = "https://en.wikipedia.org/w/rest.php/v1/search/title"
	maxKeywords   = 6
	maxCitations  = 3
)

var ftcCitation = Citation{
	Title: "FTC: Recognizing and Avoiding Phishing Scams",
	URL:   "https://consumer.ftc.gov/articles/how-recognize-and-avoid-phishing-scams",
}

var nonAlnumRE = regexp.MustCompile(`[^a-z0-9\s]`)

// keywords extracts up to maxKeywords lowercase terms from the user message.
func keywords(message string) []string {
	cleaned := nonAlnumRE.ReplaceAllString(strings.ToLower(message), " ")
	fields := strings.Fields(cleaned)
	if len(fields) > maxKeywords {
		fields = fields[:maxKeywords]
	}
	return fields
}

// lookupCitations gathers citations for the user's last message: a fixed FTC
// link for phishing/scam terms plus one Wikipedia title hit per keyword.
// Lookups run in parallel but results keep keyword order, so repeated calls
// with the same input produce the same list. Deduplicated by URL, capped at
// three. Lookup failures are silently skipped.
func (a *Assistant) lookupCitations(ctx context.Context, message string) []Citation {
	kws := keywords(message)
	if len(kws) == 0 {
		return nil
	}

	// Two slots per keyword: the FTC link, then the Wikipedia hit.
	slots := make([]*Citation, 2*len(kws))
	g, gctx := errgroup.WithContext(ctx)
	for i, kw := range kws {
		if strings.Contains(kw, "phishing") || strings.Contains(kw, "scam") {
			ftc := ftcCitation
			slots[2*i] = &ftc
		}
		g.Go(func() error {
			if c := a.searchWikipedia(gctx, kw); c != nil {
				slots[2*i+1] = c
			}
			return nil
		})
	}
	// Workers never return errors; Wait just synchronizes.
	_ = g.Wait()

	seen := make(map[string]bool)
	var out []Citation
	for _, c := range slots {
		if c == nil || seen[c.URL] {
			continue
		}
		seen[c.URL] = true
		out = append(out, *c)
		if len(out) == maxCitations {
			break
		}
	}
	return out
}

func (a *Assistant) searchWikipedia(ctx context.Context, keyword string) *Citation {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		a.wikiURL+"?q="+url.QueryEscape(keyword)+"&limit=1", nil)
	if err != nil {
		return nil
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}
	title := gjson.GetBytes(body, "pages.0.title").String()
	if title == "" {
		return nil
	}
	return &Citation{
		Title: title,
		URL:   "https://en.wikipedia.org/wiki/" + url.PathEscape(strings.ReplaceAll(title, " ", "_")),
	}
}
