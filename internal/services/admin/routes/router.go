package routes

import (
	"context"
	"fmt"
	"net/http"

	apperrors "github.com/louisbranch/fleetdesk/internal/platform/errors"
)

// Resolution is the outcome of a navigation.
type Resolution struct {
	Entry  Entry
	Found  bool
	Unit   Unit
	Status int
	Scroll ScrollTarget
}

// Router resolves navigations against a table.
type Router struct {
	table       *Table
	unavailable Unit
}

// NewRouter builds a router. unavailable is rendered when a deferred unit
// fails to load.
func NewRouter(table *Table, unavailable Unit) (*Router, error) {
	if table == nil {
		return nil, fmt.Errorf("route table is required")
	}
	if unavailable == nil {
		return nil, fmt.Errorf("unavailable page is required")
	}
	return &Router{table: table, unavailable: unavailable}, nil
}

// Table returns the router's table.
func (r *Router) Table() *Table {
	return r.table
}

// Navigate matches nav.Path, resolves its unit and computes the scroll
// target. Load failures return the unavailable unit together with the error.
func (r *Router) Navigate(ctx context.Context, nav Navigation) (Resolution, error) {
	entry, found := r.table.Match(nav.Path)
	res := Resolution{
		Entry:  entry,
		Found:  found,
		Status: http.StatusOK,
		Scroll: ScrollFor(nav),
	}
	if !found {
		res.Status = http.StatusNotFound
	}

	unit, err := entry.Page.Resolve(ctx)
	if err != nil {
		res.Unit = r.unavailable
		res.Status = apperrors.HTTPStatus(err)
		return res, err
	}
	res.Unit = unit
	return res, nil
}
