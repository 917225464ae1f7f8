package bigquery

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

var ErrTableNotFound = errors.New("table not found")

func isNotFoundErr(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}
