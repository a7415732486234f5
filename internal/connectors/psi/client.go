package psi

import (
	"context"

	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
)

// Selectors on the register's search page.
const (
	searchBoxSel = `#search-input`
	resultsSel   = `ul.results-list > li`
)

// Pagination outcomes reported by nextButtonScript.
const (
	nextClicked  = "clicked"
	nextDisabled = "disabled"
	nextMissing  = "missing"
)

// submitSearch loads the search page, types the query and presses enter.
func (c *Connector) submitSearch(tabCtx context.Context, query string) error {
	return chromedp.Run(tabCtx,
		chromedp.Navigate(c.cfg.BaseURL),
		chromedp.WaitVisible(searchBoxSel, chromedp.ByQuery),
		chromedp.Clear(searchBoxSel, chromedp.ByQuery),
		chromedp.SendKeys(searchBoxSel, query+kb.Enter, chromedp.ByQuery),
		chromedp.Sleep(c.cfg.PageSettle),
	)
}

// resultsPage waits for the current results list to render and returns
// the page HTML. The wait is bounded by cfg.ResultsWait; a deadline here
// means the register showed no results for the query.
func (c *Connector) resultsPage(tabCtx context.Context) (string, error) {
	waitCtx, cancel := context.WithTimeout(tabCtx, c.cfg.ResultsWait)
	defer cancel()
	if err := chromedp.Run(waitCtx, chromedp.WaitVisible(resultsSel, chromedp.ByQuery)); err != nil {
		return "", err
	}

	var html string
	if err := chromedp.Run(tabCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}

// nextPage scrolls the pagination button into view and clicks it when
// another page exists. It reports one of the next* outcomes.
func (c *Connector) nextPage(tabCtx context.Context) (string, error) {
	var status string
	if err := chromedp.Run(tabCtx, chromedp.Evaluate(nextButtonScript, &status)); err != nil {
		return "", err
	}
	if status == nextClicked {
		if err := chromedp.Run(tabCtx, chromedp.Sleep(c.cfg.PageSettle)); err != nil {
			return "", err
		}
	}
	return status, nil
}

// nextButtonScript locates the register's next-page button. The button
// has no stable id, only the btn-link class and a single angle quote as
// its text, and carries "disabled" in its class list on the last page.
const nextButtonScript = `(function () {
  const buttons = Array.from(document.querySelectorAll('button.btn.btn-link'));
  const next = buttons.find(btn => btn.textContent.includes('›'));
  if (!next) {
    return 'missing';
  }
  next.scrollIntoView();
  if (next.className.includes('disabled')) {
    return 'disabled';
  }
  next.click();
  return 'clicked';
})();`
