package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"expensetracker/internal/errors"
	"expensetracker/internal/model"
)

const dateLayout = "2006-01-02"

// errorResponse converts a domain error into an echo HTTP error with the JSON error body.
func errorResponse(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(message, code string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: message, Code: code})
}

// parseTime accepts RFC3339 or YYYY-MM-DD. A date-only value with endOfDay
// set covers the whole day.
func parseTime(raw string, endOfDay bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", raw)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

func parseDateRange(c echo.Context) (model.DateRange, error) {
	var r model.DateRange
	if raw := c.QueryParam("startDate"); raw != "" {
		t, err := parseTime(raw, false)
		if err != nil {
			return r, fmt.Errorf("%w: %v", errors.ErrInvalidDateRange, err)
		}
		r.From = &t
	}
	if raw := c.QueryParam("endDate"); raw != "" {
		t, err := parseTime(raw, true)
		if err != nil {
			return r, fmt.Errorf("%w: %v", errors.ErrInvalidDateRange, err)
		}
		r.To = &t
	}
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return r, errors.ErrInvalidDateRange
	}
	return r, nil
}

func parseAmountRange(c echo.Context) (model.AmountRange, error) {
	var r model.AmountRange
	if raw := c.QueryParam("minAmount"); raw != "" {
		d, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return r, fmt.Errorf("%w: invalid minAmount %q", errors.ErrInvalidAmountRange, raw)
		}
		r.Min = &d
	}
	if raw := c.QueryParam("maxAmount"); raw != "" {
		d, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return r, fmt.Errorf("%w: invalid maxAmount %q", errors.ErrInvalidAmountRange, raw)
		}
		r.Max = &d
	}
	if r.Min != nil && r.Max != nil && r.Min.GreaterThan(*r.Max) {
		return r, errors.ErrInvalidAmountRange
	}
	return r, nil
}

func parseFilter(c echo.Context) (model.ExpenseFilter, error) {
	dates, err := parseDateRange(c)
	if err != nil {
		return model.ExpenseFilter{}, err
	}
	amounts, err := parseAmountRange(c)
	if err != nil {
		return model.ExpenseFilter{}, err
	}
	return model.ExpenseFilter{Dates: dates, Amounts: amounts}, nil
}

// parseSort never fails: unknown keys sort by date and descending defaults to true.
func parseSort(c echo.Context) model.Sort {
	s := model.Sort{Key: model.ParseSortKey(c.QueryParam("sortBy")), Descending: true}
	if raw := c.QueryParam("descending"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			s.Descending = v
		}
	}
	return s
}

// parsePage leaves unparseable values at zero so the service applies its defaults.
func parsePage(c echo.Context) model.Page {
	var p model.Page
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		p.Number = v
	}
	if v, err := strconv.Atoi(c.QueryParam("pageSize")); err == nil {
		p.Size = v
	}
	return p
}

func parseQuery(c echo.Context) (model.ExpenseQuery, error) {
	filter, err := parseFilter(c)
	if err != nil {
		return model.ExpenseQuery{}, err
	}
	return model.ExpenseQuery{Filter: filter, Sort: parseSort(c), Page: parsePage(c)}, nil
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, badRequest("invalid "+name, "INVALID_ID")
	}
	return uint(id), nil
}
