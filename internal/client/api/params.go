package api

import (
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/medfinder/internal/client/validate"
)

func checkID(op operation, name string, id int64) error {
	if err := validate.Var(name, id, "gt=0"); err != nil {
		return validationFailed(op, err)
	}
	return nil
}

func checkPaging(op operation, page, limit int) error {
	if err := validate.Var("page", page, "gte=1"); err != nil {
		return validationFailed(op, err)
	}
	if err := validate.Var("limit", limit, "gte=1,lte=100"); err != nil {
		return validationFailed(op, err)
	}
	return nil
}

func pagingQuery(page, limit int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return q
}

func idSegment(id int64) string {
	return strconv.FormatInt(id, 10)
}
