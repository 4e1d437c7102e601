package mappings

import (
	"net/http"
	"strconv"

	"github.com/spec-kit/catalog-admin/internal/config"
	"github.com/spec-kit/catalog-admin/internal/dispatch"
	"github.com/spec-kit/catalog-admin/internal/service"
	"github.com/spec-kit/catalog-admin/pkg/util"
)

// listInput parses the admin frontend's list query contract: _start/_end
// window bounds, _sort/_order, free-text q and the activated flag. Skip is
// _start, limit is _end minus _start.
func listInput(pagination config.PaginationConfig) dispatch.InputTransform {
	return func(dctx *dispatch.Context) (any, error) {
		query := dctx.Request.Query

		skip := pagination.SkipDefault
		if raw := query["_start"]; raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || parsed < 0 {
				return nil, util.NewValidation("_start must be a non-negative integer")
			}
			skip = parsed
		}

		limit := pagination.LimitDefault
		if raw := query["_end"]; raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || parsed < skip {
				return nil, util.NewValidation("_end must be an integer not less than _start")
			}
			limit = parsed - skip
		}

		params := service.ListParams{
			Skip:  skip,
			Limit: limit,
			Sort:  query["_sort"],
			Order: query["_order"],
			Q:     query["q"],
		}
		if raw := query["activated"]; raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, util.NewValidation("activated must be a boolean")
			}
			params.Activated = &parsed
		}
		return params, nil
	}
}

// listOutput exposes the total match count through the X-Total-Count header
// and returns the page as the body.
func listOutput(_ *dispatch.Context, result any) (*dispatch.Response, error) {
	list := result.(*service.ListResult)
	resp := &dispatch.Response{Status: http.StatusOK, Body: list.Data}
	resp.SetHeader("X-Total-Count", strconv.FormatInt(list.Total, 10))
	return resp, nil
}
