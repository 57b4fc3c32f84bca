package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/foodfairhq/fairtrack/internal/models"
)

// dateLayout is the wire format for the from/to query parameters.
const dateLayout = "2006-01-02"

// parseListFilter reads the optional place, from and to query parameters.
// The date range applies only when both from and to are present; to is
// inclusive of the whole named day, so the filter's upper bound is
// midnight of the following day.
func parseListFilter(r *http.Request) (models.ListFilter, error) {
	q := r.URL.Query()

	f := models.ListFilter{Place: strings.TrimSpace(q.Get("place"))}

	fromStr := strings.TrimSpace(q.Get("from"))
	toStr := strings.TrimSpace(q.Get("to"))
	if fromStr == "" || toStr == "" {
		return f, nil
	}

	from, err := time.Parse(dateLayout, fromStr)
	if err != nil {
		return models.ListFilter{}, fmt.Errorf("invalid from date %q", fromStr)
	}
	to, err := time.Parse(dateLayout, toStr)
	if err != nil {
		return models.ListFilter{}, fmt.Errorf("invalid to date %q", toStr)
	}

	f.From = from
	f.To = to.AddDate(0, 0, 1)
	f.ByDate = true
	return f, nil
}
