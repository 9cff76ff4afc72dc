package http

import (
	"net/http"

	"meatdelivery/internal/core/application/usecases/queries"
	"meatdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid format for parameter "+name).SetInternal(err)
	}
	return kernel.UUIDFrom(id), nil
}

func queryInt(c echo.Context, name string) (int, error) {
	var v *int
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &v); err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid format for parameter "+name).SetInternal(err)
	}
	if v == nil {
		return 0, nil
	}
	return *v, nil
}

func queryFloat(c echo.Context, name string) (*float64, error) {
	var v *float64
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &v); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid format for parameter "+name).SetInternal(err)
	}
	return v, nil
}

// pageFrom reads ?page= and ?limit=; NewPage applies the defaults.
func pageFrom(c echo.Context) (queries.Page, error) {
	number, err := queryInt(c, "page")
	if err != nil {
		return queries.Page{}, err
	}
	size, err := queryInt(c, "limit")
	if err != nil {
		return queries.Page{}, err
	}
	return queries.NewPage(number, size), nil
}

// bind decodes the body and runs the validator.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
